package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
)

// AreaProduccionUseCase casos de uso CRUD para áreas de producción.
// El nombre es único entre las áreas activas, también al reactivar.
type AreaProduccionUseCase struct {
	repo  repository.AreaProduccionRepository
	clock clock.Clock
}

// NewAreaProduccionUseCase construye el caso de uso.
func NewAreaProduccionUseCase(repo repository.AreaProduccionRepository, clk clock.Clock) *AreaProduccionUseCase {
	return &AreaProduccionUseCase{repo: repo, clock: clk}
}

// List lista áreas; por defecto solo las activas.
func (uc *AreaProduccionUseCase) List(ctx context.Context, filtro repository.Filtro) ([]dto.AreaProduccionResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewAreaProduccionResponse), nil
}

// GetByID obtiene un área por ID (ErrNotFound si no existe).
func (uc *AreaProduccionUseCase) GetByID(ctx context.Context, id string) (*dto.AreaProduccionResponse, error) {
	a, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewAreaProduccionResponse(a)
	return &out, nil
}

// Create crea un área activa.
func (uc *AreaProduccionUseCase) Create(ctx context.Context, in dto.CreateAreaProduccionRequest) (*dto.AreaProduccionResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	area := &entity.AreaProduccion{Catalogo: nuevoCatalogo(uc.clock.Now(), in.Nombre, in.Descripcion)}
	if err := uc.nombreLibre(ctx, area); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, area); err != nil {
		return nil, err
	}
	out := dto.NewAreaProduccionResponse(area)
	return &out, nil
}

// Update reemplaza nombre y descripción.
func (uc *AreaProduccionUseCase) Update(ctx context.Context, id string, in dto.UpdateAreaProduccionRequest) (*dto.AreaProduccionResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	area, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	reemplazar(&area.Catalogo, uc.clock.Now(), in.Nombre, in.Descripcion)
	if err := uc.nombreLibre(ctx, area); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, area); err != nil {
		return nil, err
	}
	out := dto.NewAreaProduccionResponse(area)
	return &out, nil
}

// SetEstado activa o desactiva el área.
func (uc *AreaProduccionUseCase) SetEstado(ctx context.Context, id string, activo bool) (*dto.AreaProduccionResponse, error) {
	area, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	area.Estado = entity.EstadoDesdeBool(activo)
	if err := uc.nombreLibre(ctx, area); err != nil {
		return nil, err
	}
	updated, err := uc.repo.SetEstado(ctx, id, area.Estado, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	out := dto.NewAreaProduccionResponse(updated)
	return &out, nil
}

func (uc *AreaProduccionUseCase) get(ctx context.Context, id string) (*entity.AreaProduccion, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, noEncontrado(entity.KindAreasProduccion, id)
	}
	return a, nil
}

// nombreLibre solo aplica a áreas activas.
func (uc *AreaProduccionUseCase) nombreLibre(ctx context.Context, a *entity.AreaProduccion) error {
	if !a.Estado.Activo() {
		return nil
	}
	otra, err := uc.repo.GetActivaByClaveNombre(ctx, entity.ClaveNombre(a.Nombre))
	if err != nil {
		return err
	}
	if otra != nil && otra.ID != a.ID {
		return duplicado("nombre", a.Nombre)
	}
	return nil
}
