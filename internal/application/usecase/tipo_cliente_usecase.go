package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
)

// TipoClienteUseCase casos de uso para tipos de cliente.
// Es el único catálogo con actualización parcial: los campos omitidos conservan su valor.
type TipoClienteUseCase struct {
	repo  repository.TipoClienteRepository
	clock clock.Clock
}

func NewTipoClienteUseCase(repo repository.TipoClienteRepository, clk clock.Clock) *TipoClienteUseCase {
	return &TipoClienteUseCase{repo: repo, clock: clk}
}

func (uc *TipoClienteUseCase) List(ctx context.Context, filtro repository.Filtro) ([]dto.TipoClienteResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewTipoClienteResponse), nil
}

func (uc *TipoClienteUseCase) GetByID(ctx context.Context, id string) (*dto.TipoClienteResponse, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewTipoClienteResponse(t)
	return &out, nil
}

func (uc *TipoClienteUseCase) Create(ctx context.Context, in dto.CreateTipoClienteRequest) (*dto.TipoClienteResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	t := &entity.TipoCliente{
		Catalogo:            nuevoCatalogo(uc.clock.Now(), in.Nombre, in.Descripcion),
		DescuentoPorcentaje: in.DescuentoPorcentaje,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	out := dto.NewTipoClienteResponse(t)
	return &out, nil
}

// Update aplica solo los campos presentes. fecha_creacion nunca cambia.
func (uc *TipoClienteUseCase) Update(ctx context.Context, id string, in dto.UpdateTipoClienteRequest) (*dto.TipoClienteResponse, error) {
	if in.Vacio() {
		return nil, domain.NewValidationError("", "al_menos_uno", "debe enviar al menos un campo para actualizar")
	}
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombre != nil {
		t.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Descripcion != nil {
		t.Descripcion = strings.TrimSpace(*in.Descripcion)
	}
	if in.DescuentoPorcentaje != nil {
		t.DescuentoPorcentaje = *in.DescuentoPorcentaje
	}
	t.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	out := dto.NewTipoClienteResponse(t)
	return &out, nil
}

func (uc *TipoClienteUseCase) SetEstado(ctx context.Context, id string, activo bool) (*dto.TipoClienteResponse, error) {
	t, err := uc.repo.SetEstado(ctx, id, entity.EstadoDesdeBool(activo), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	out := dto.NewTipoClienteResponse(t)
	return &out, nil
}

func (uc *TipoClienteUseCase) get(ctx context.Context, id string) (*entity.TipoCliente, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, noEncontrado(entity.KindTiposCliente, id)
	}
	return t, nil
}
