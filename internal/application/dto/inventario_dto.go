package dto

import (
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateInsumoRequest alta de insumo. La existencia inicial es cero; cambia solo con movimientos.
type CreateInsumoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,notblank,max=120"`
	UnidadID    string          `json:"unidad_id" validate:"required,notblank"`
	GrupoID     string          `json:"grupo_id"`
	StockMinimo decimal.Decimal `json:"stock_minimo" validate:"gte=0,decimales=4"`
}

// UpdateInsumoRequest reemplazo completo de los datos maestros (no toca existencia ni costo).
type UpdateInsumoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,notblank,max=120"`
	UnidadID    string          `json:"unidad_id" validate:"required,notblank"`
	GrupoID     string          `json:"grupo_id"`
	StockMinimo decimal.Decimal `json:"stock_minimo" validate:"gte=0,decimales=4"`
}

// RegistrarMovimientoRequest body de POST /api/inventario/insumos/:id/movimientos.
// En ajuste la cantidad lleva signo; en entrada y salida debe ser positiva.
type RegistrarMovimientoRequest struct {
	Tipo          string           `json:"tipo" validate:"required,oneof=entrada salida ajuste"`
	Cantidad      decimal.Decimal  `json:"cantidad" validate:"decimales=4"`
	CostoUnitario *decimal.Decimal `json:"costo_unitario" validate:"omitempty,gte=0,decimales=4"`
}

type InsumoResponse struct {
	ID            string          `json:"id"`
	Nombre        string          `json:"nombre"`
	UnidadID      string          `json:"unidad_id"`
	GrupoID       string          `json:"grupo_id"`
	Existencia    decimal.Decimal `json:"existencia"`
	StockMinimo   decimal.Decimal `json:"stock_minimo"`
	CostoPromedio decimal.Decimal `json:"costo_promedio"`
	BajoMinimo    bool            `json:"bajo_minimo"`
	Estado        entity.Estado   `json:"estado"`
	Activo        bool            `json:"activo"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type MovimientoResponse struct {
	ID            string          `json:"id"`
	InsumoID      string          `json:"insumo_id"`
	Tipo          string          `json:"tipo"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	CostoTotal    decimal.Decimal `json:"costo_total"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by"`
}

// MovimientoRegistradoResponse resultado de registrar un movimiento.
type MovimientoRegistradoResponse struct {
	Movimiento MovimientoResponse `json:"movimiento"`
	Insumo     InsumoResponse     `json:"insumo"`
}

// EstadisticasInventarioResponse resumen para la página de inventario.
type EstadisticasInventarioResponse struct {
	TotalInsumos int             `json:"totalInsumos"`
	BajoMinimo   int             `json:"bajoMinimo"`
	ValorTotal   decimal.Decimal `json:"valorTotal"`
}

// ReabastecimientoDTO sugerencia de compra para un insumo bajo su mínimo.
type ReabastecimientoDTO struct {
	InsumoID          string          `json:"insumo_id"`
	Nombre            string          `json:"nombre"`
	UnidadID          string          `json:"unidad_id"`
	Existencia        decimal.Decimal `json:"existencia"`
	StockMinimo       decimal.Decimal `json:"stock_minimo"`
	CantidadSugerida  decimal.Decimal `json:"cantidad_sugerida"` // 1.5 × mínimo − existencia
	CostoUnitario     decimal.Decimal `json:"costo_unitario"`
	CostoEstimado     decimal.Decimal `json:"costo_estimado"`
	DeficitPorcentaje decimal.Decimal `json:"deficit_porcentaje"`
	Prioridad         int             `json:"prioridad"` // 1 = más urgente
}

func NewInsumoResponse(i *entity.Insumo) InsumoResponse {
	return InsumoResponse{
		ID:            i.ID,
		Nombre:        i.Nombre,
		UnidadID:      i.UnidadID,
		GrupoID:       i.GrupoID,
		Existencia:    i.Existencia,
		StockMinimo:   i.StockMinimo,
		CostoPromedio: i.CostoPromedio,
		BajoMinimo:    i.BajoMinimo(),
		Estado:        i.Estado,
		Activo:        i.Estado.Activo(),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func NewMovimientoResponse(m *entity.MovimientoInventario) MovimientoResponse {
	return MovimientoResponse{
		ID:            m.ID,
		InsumoID:      m.InsumoID,
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		CostoUnitario: m.CostoUnitario,
		CostoTotal:    m.CostoTotal,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

func NewEstadisticasResponse(e *entity.EstadisticasInventario) EstadisticasInventarioResponse {
	if e == nil {
		return EstadisticasInventarioResponse{ValorTotal: decimal.Zero}
	}
	return EstadisticasInventarioResponse{TotalInsumos: e.TotalInsumos, BajoMinimo: e.BajoMinimo, ValorTotal: e.ValorTotal}
}
