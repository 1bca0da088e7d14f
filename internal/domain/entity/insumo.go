package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Insumo es un artículo de inventario (materia prima de cocina o bar).
// CostoPromedio es promedio ponderado calculado desde las entradas; Existencia cambia solo vía movimientos.
type Insumo struct {
	ID            string
	Nombre        string
	UnidadID      string
	GrupoID       string // vacío si no está clasificado
	Existencia    decimal.Decimal
	StockMinimo   decimal.Decimal
	CostoPromedio decimal.Decimal
	Estado        Estado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BajoMinimo informa si la existencia está por debajo del mínimo configurado.
func (i *Insumo) BajoMinimo() bool {
	return i.StockMinimo.GreaterThan(decimal.Zero) && i.Existencia.LessThan(i.StockMinimo)
}

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
	MovimientoAjuste  = "ajuste" // positivo suma, negativo resta
)

// MovimientoInventario registra un cambio de existencia de un insumo.
type MovimientoInventario struct {
	ID            string
	InsumoID      string
	Tipo          string
	Cantidad      decimal.Decimal // positivo entrada, negativo salida
	CostoUnitario decimal.Decimal
	CostoTotal    decimal.Decimal
	CreatedAt     time.Time
	CreatedBy     string
}

// EstadisticasInventario resume el inventario para la vista principal.
type EstadisticasInventario struct {
	TotalInsumos int
	BajoMinimo   int
	ValorTotal   decimal.Decimal
}
