package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
)

// MetodoPagoUseCase casos de uso CRUD para métodos de pago.
type MetodoPagoUseCase struct {
	repo  repository.MetodoPagoRepository
	clock clock.Clock
}

func NewMetodoPagoUseCase(repo repository.MetodoPagoRepository, clk clock.Clock) *MetodoPagoUseCase {
	return &MetodoPagoUseCase{repo: repo, clock: clk}
}

func (uc *MetodoPagoUseCase) List(ctx context.Context, filtro repository.Filtro) ([]dto.MetodoPagoResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewMetodoPagoResponse), nil
}

func (uc *MetodoPagoUseCase) GetByID(ctx context.Context, id string) (*dto.MetodoPagoResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewMetodoPagoResponse(m)
	return &out, nil
}

func (uc *MetodoPagoUseCase) Create(ctx context.Context, in dto.CreateMetodoPagoRequest) (*dto.MetodoPagoResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	m := &entity.MetodoPago{
		Catalogo:           nuevoCatalogo(uc.clock.Now(), in.Nombre, in.Descripcion),
		RequiereReferencia: in.RequiereReferencia,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	out := dto.NewMetodoPagoResponse(m)
	return &out, nil
}

func (uc *MetodoPagoUseCase) Update(ctx context.Context, id string, in dto.UpdateMetodoPagoRequest) (*dto.MetodoPagoResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	reemplazar(&m.Catalogo, uc.clock.Now(), in.Nombre, in.Descripcion)
	m.RequiereReferencia = in.RequiereReferencia
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	out := dto.NewMetodoPagoResponse(m)
	return &out, nil
}

func (uc *MetodoPagoUseCase) SetEstado(ctx context.Context, id string, activo bool) (*dto.MetodoPagoResponse, error) {
	m, err := uc.repo.SetEstado(ctx, id, entity.EstadoDesdeBool(activo), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	out := dto.NewMetodoPagoResponse(m)
	return &out, nil
}

func (uc *MetodoPagoUseCase) get(ctx context.Context, id string) (*entity.MetodoPago, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, noEncontrado(entity.KindMetodosPago, id)
	}
	return m, nil
}
