package repository

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InsumoRepository puerto de persistencia para insumos de inventario.
// Create y Update devuelven domain.ErrIntegrity si UnidadID (o GrupoID) no existe.
type InsumoRepository interface {
	CatalogoRepository[entity.Insumo]
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Insumo, error)
	// UpdateExistencia fija existencia y costo promedio (solo vía movimientos).
	UpdateExistencia(ctx context.Context, id string, existencia, costo decimal.Decimal) error
	Estadisticas(ctx context.Context) (*entity.EstadisticasInventario, error)
	ListBajoMinimo(ctx context.Context) ([]*entity.Insumo, error)
}

// MovimientoRepository puerto de persistencia para movimientos de inventario.
type MovimientoRepository interface {
	Create(ctx context.Context, mov *entity.MovimientoInventario) error
	ListByInsumo(ctx context.Context, insumoID string, limit int) ([]*entity.MovimientoInventario, error)
}
