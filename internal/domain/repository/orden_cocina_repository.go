package repository

import (
	"context"
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// FiltroOrdenes filtra el tablero de cocina. Sin Estados se excluyen las órdenes terminadas.
type FiltroOrdenes struct {
	Estados          []entity.EstadoOrden
	AreaProduccionID string
}

// OrdenCocinaRepository puerto de persistencia para órdenes de cocina.
type OrdenCocinaRepository interface {
	Create(ctx context.Context, orden *entity.OrdenCocina) error
	GetByID(ctx context.Context, id string) (*entity.OrdenCocina, error)
	List(ctx context.Context, filtro FiltroOrdenes) ([]*entity.OrdenCocina, error)
	// CambiarEstado aplica la transición solo si el estado actual sigue siendo `desde`;
	// si otro proceso lo cambió devuelve domain.ErrConflict.
	CambiarEstado(ctx context.Context, id string, desde, hacia entity.EstadoOrden, at time.Time) (*entity.OrdenCocina, error)
}
