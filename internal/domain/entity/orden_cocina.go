package entity

import "time"

// EstadoOrden es el estado de una orden dentro de la cocina.
type EstadoOrden string

const (
	OrdenPendiente     EstadoOrden = "pendiente"
	OrdenEnPreparacion EstadoOrden = "en_preparacion"
	OrdenLista         EstadoOrden = "lista"
	OrdenEntregada     EstadoOrden = "entregada"
	OrdenCancelada     EstadoOrden = "cancelada"
)

// transicionesOrden: origen → destinos permitidos. Entregada y cancelada son terminales.
var transicionesOrden = map[EstadoOrden][]EstadoOrden{
	OrdenPendiente:     {OrdenEnPreparacion, OrdenCancelada},
	OrdenEnPreparacion: {OrdenLista, OrdenCancelada},
	OrdenLista:         {OrdenEntregada},
}

// Valid informa si el estado es conocido.
func (e EstadoOrden) Valid() bool {
	switch e {
	case OrdenPendiente, OrdenEnPreparacion, OrdenLista, OrdenEntregada, OrdenCancelada:
		return true
	}
	return false
}

// Terminal informa si la orden ya no admite cambios.
func (e EstadoOrden) Terminal() bool {
	return e == OrdenEntregada || e == OrdenCancelada
}

// PuedePasarA informa si la transición e → destino está permitida.
func (e EstadoOrden) PuedePasarA(destino EstadoOrden) bool {
	for _, d := range transicionesOrden[e] {
		if d == destino {
			return true
		}
	}
	return false
}

// ItemOrden es una línea de la comanda.
type ItemOrden struct {
	Descripcion string `json:"descripcion"`
	Cantidad    int    `json:"cantidad"`
	Notas       string `json:"notas,omitempty"`
}

// OrdenCocina es una comanda enviada a un área de producción.
type OrdenCocina struct {
	ID               string
	Mesa             string
	AreaProduccionID string
	Items            []ItemOrden
	Notas            string
	Estado           EstadoOrden
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
