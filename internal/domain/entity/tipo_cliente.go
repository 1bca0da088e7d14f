package entity

import "github.com/shopspring/decimal"

// TipoCliente clasifica clientes y define su descuento (0 a 100 inclusive).
// CreatedAt/UpdatedAt corresponden a fecha_creacion/fecha_actualizacion y los asigna el servidor.
type TipoCliente struct {
	Catalogo
	DescuentoPorcentaje decimal.Decimal
}
