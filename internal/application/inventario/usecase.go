package inventario

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/shopspring/decimal"
)

// InsumoUseCase datos maestros de insumos. Existencia y costo cambian solo con movimientos.
type InsumoUseCase struct {
	repo        repository.InsumoRepository
	movimientos repository.MovimientoRepository
	unidades    repository.UnidadRepository
	grupos      repository.GrupoRepository
	clock       clock.Clock
}

// NewInsumoUseCase construye el caso de uso.
func NewInsumoUseCase(
	repo repository.InsumoRepository,
	movimientos repository.MovimientoRepository,
	unidades repository.UnidadRepository,
	grupos repository.GrupoRepository,
	clk clock.Clock,
) *InsumoUseCase {
	return &InsumoUseCase{repo: repo, movimientos: movimientos, unidades: unidades, grupos: grupos, clock: clk}
}

func (uc *InsumoUseCase) List(ctx context.Context, filtro repository.Filtro) ([]dto.InsumoResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewInsumoResponse), nil
}

func (uc *InsumoUseCase) GetByID(ctx context.Context, id string) (*dto.InsumoResponse, error) {
	i, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewInsumoResponse(i)
	return &out, nil
}

// Create da de alta un insumo con existencia y costo en cero.
func (uc *InsumoUseCase) Create(ctx context.Context, in dto.CreateInsumoRequest) (*dto.InsumoResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	i := &entity.Insumo{
		ID:            uuid.New().String(),
		Nombre:        strings.TrimSpace(in.Nombre),
		UnidadID:      strings.TrimSpace(in.UnidadID),
		GrupoID:       strings.TrimSpace(in.GrupoID),
		Existencia:    decimal.Zero,
		StockMinimo:   in.StockMinimo,
		CostoPromedio: decimal.Zero,
		Estado:        entity.EstadoActivo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.referencias(ctx, i); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	out := dto.NewInsumoResponse(i)
	return &out, nil
}

// Update reemplaza nombre, unidad, grupo y mínimo.
func (uc *InsumoUseCase) Update(ctx context.Context, id string, in dto.UpdateInsumoRequest) (*dto.InsumoResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	i, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	i.Nombre = strings.TrimSpace(in.Nombre)
	i.UnidadID = strings.TrimSpace(in.UnidadID)
	i.GrupoID = strings.TrimSpace(in.GrupoID)
	i.StockMinimo = in.StockMinimo
	i.UpdatedAt = uc.clock.Now()
	if err := uc.referencias(ctx, i); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	out := dto.NewInsumoResponse(i)
	return &out, nil
}

func (uc *InsumoUseCase) SetEstado(ctx context.Context, id string, activo bool) (*dto.InsumoResponse, error) {
	i, err := uc.repo.SetEstado(ctx, id, entity.EstadoDesdeBool(activo), uc.clock.Now())
	if err != nil {
		return nil, err
	}
	out := dto.NewInsumoResponse(i)
	return &out, nil
}

// Movimientos devuelve el kardex del insumo, el más reciente primero.
func (uc *InsumoUseCase) Movimientos(ctx context.Context, id string, limit int) ([]dto.MovimientoResponse, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	list, err := uc.movimientos.ListByInsumo(ctx, id, limit)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewMovimientoResponse), nil
}

func (uc *InsumoUseCase) referencias(ctx context.Context, i *entity.Insumo) error {
	u, err := uc.unidades.GetByID(ctx, i.UnidadID)
	if err != nil {
		return err
	}
	if u == nil {
		return fmt.Errorf("%w: la unidad %q no existe", domain.ErrIntegrity, i.UnidadID)
	}
	if i.GrupoID == "" {
		return nil
	}
	g, err := uc.grupos.GetByID(ctx, i.GrupoID)
	if err != nil {
		return err
	}
	if g == nil {
		return fmt.Errorf("%w: el grupo %q no existe", domain.ErrIntegrity, i.GrupoID)
	}
	return nil
}

func (uc *InsumoUseCase) get(ctx context.Context, id string) (*entity.Insumo, error) {
	i, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, fmt.Errorf("%w: insumo %s", domain.ErrNotFound, id)
	}
	return i, nil
}
