package memoria

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// OrdenCocinaRepository implementa repository.OrdenCocinaRepository.
type OrdenCocinaRepository struct{ s *Store }

func (s *Store) OrdenesCocina() *OrdenCocinaRepository { return &OrdenCocinaRepository{s: s} }

func (r *OrdenCocinaRepository) Create(ctx context.Context, o *entity.OrdenCocina) error {
	return r.s.ordenes.create(ctx, o, func(o *entity.OrdenCocina) error {
		if !r.s.areas.activa(o.AreaProduccionID) {
			return fmt.Errorf("%w: área de producción %s", domain.ErrIntegrity, o.AreaProduccionID)
		}
		return nil
	})
}

func (r *OrdenCocinaRepository) GetByID(ctx context.Context, id string) (*entity.OrdenCocina, error) {
	return r.s.ordenes.get(ctx, id)
}

func (r *OrdenCocinaRepository) List(ctx context.Context, f repository.FiltroOrdenes) ([]*entity.OrdenCocina, error) {
	if err := vivo(ctx, "ordenes"); err != nil {
		return nil, err
	}
	r.s.ordenes.mu.RLock()
	defer r.s.ordenes.mu.RUnlock()
	return r.s.ordenes.listL(func(o *entity.OrdenCocina) bool {
		if f.AreaProduccionID != "" && o.AreaProduccionID != f.AreaProduccionID {
			return false
		}
		if len(f.Estados) == 0 {
			return !o.Estado.Terminal()
		}
		return slices.Contains(f.Estados, o.Estado)
	}), nil
}

func (r *OrdenCocinaRepository) CambiarEstado(ctx context.Context, id string, desde, hacia entity.EstadoOrden, at time.Time) (*entity.OrdenCocina, error) {
	if err := vivo(ctx, "cambiar_estado"); err != nil {
		return nil, err
	}
	t := r.s.ordenes
	t.mu.Lock()
	defer t.mu.Unlock()
	o := t.getL(id)
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.Estado != desde {
		return nil, fmt.Errorf("%w: la orden está en %s", domain.ErrConflict, o.Estado)
	}
	o.Estado = hacia
	o.UpdatedAt = at
	t.putL(o)
	return t.getL(id), nil
}

var _ repository.OrdenCocinaRepository = (*OrdenCocinaRepository)(nil)
