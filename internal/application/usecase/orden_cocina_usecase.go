package usecase

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
)

// OrdenCocinaUseCase comandas de cocina y su máquina de estados.
type OrdenCocinaUseCase struct {
	repo  repository.OrdenCocinaRepository
	areas repository.AreaProduccionRepository
	clock clock.Clock
}

func NewOrdenCocinaUseCase(repo repository.OrdenCocinaRepository, areas repository.AreaProduccionRepository, clk clock.Clock) *OrdenCocinaUseCase {
	return &OrdenCocinaUseCase{repo: repo, areas: areas, clock: clk}
}

// Create registra una comanda pendiente. El área debe existir y estar activa.
func (uc *OrdenCocinaUseCase) Create(ctx context.Context, in dto.CreateOrdenCocinaRequest) (*dto.OrdenCocinaResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	areaID := strings.TrimSpace(in.AreaProduccionID)
	area, err := uc.areas.GetByID(ctx, areaID)
	if err != nil {
		return nil, err
	}
	if area == nil || !area.Estado.Activo() {
		return nil, fmt.Errorf("%w: el área de producción %q no existe o está inactiva", domain.ErrIntegrity, areaID)
	}

	items := make([]entity.ItemOrden, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.ItemOrden{
			Descripcion: strings.TrimSpace(it.Descripcion),
			Cantidad:    it.Cantidad,
			Notas:       strings.TrimSpace(it.Notas),
		})
	}
	now := uc.clock.Now()
	orden := &entity.OrdenCocina{
		ID:               uuid.New().String(),
		Mesa:             strings.TrimSpace(in.Mesa),
		AreaProduccionID: areaID,
		Items:            items,
		Notas:            strings.TrimSpace(in.Notas),
		Estado:           entity.OrdenPendiente,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, orden); err != nil {
		return nil, err
	}
	out := dto.NewOrdenCocinaResponse(orden)
	return &out, nil
}

func (uc *OrdenCocinaUseCase) GetByID(ctx context.Context, id string) (*dto.OrdenCocinaResponse, error) {
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewOrdenCocinaResponse(o)
	return &out, nil
}

// List arma el tablero; sin estados devuelve solo órdenes abiertas.
func (uc *OrdenCocinaUseCase) List(ctx context.Context, in dto.FiltroOrdenesRequest) ([]dto.OrdenCocinaResponse, error) {
	filtro := repository.FiltroOrdenes{AreaProduccionID: strings.TrimSpace(in.AreaID)}
	for _, e := range strings.Split(in.Estado, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		estado := entity.EstadoOrden(e)
		if !estado.Valid() {
			return nil, domain.NewValidationError("estado", "oneof", fmt.Sprintf("estado %q no es un estado de orden", e))
		}
		filtro.Estados = append(filtro.Estados, estado)
	}
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	return dto.Lista(list, dto.NewOrdenCocinaResponse), nil
}

// CambiarEstado aplica una transición permitida; las terminales no admiten cambios.
func (uc *OrdenCocinaUseCase) CambiarEstado(ctx context.Context, id string, in dto.CambiarEstadoOrdenRequest) (*dto.OrdenCocinaResponse, error) {
	if err := validation.Validate(in); err != nil {
		return nil, err
	}
	o, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	hacia := entity.EstadoOrden(in.Estado)
	if !o.Estado.PuedePasarA(hacia) {
		return nil, fmt.Errorf("%w: de %s a %s", domain.ErrInvalidTransition, o.Estado, hacia)
	}
	updated, err := uc.repo.CambiarEstado(ctx, id, o.Estado, hacia, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	out := dto.NewOrdenCocinaResponse(updated)
	return &out, nil
}

func (uc *OrdenCocinaUseCase) get(ctx context.Context, id string) (*entity.OrdenCocina, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, id)
	}
	return o, nil
}
