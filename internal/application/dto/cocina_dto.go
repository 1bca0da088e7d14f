package dto

import (
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// ItemOrdenRequest línea de comanda.
type ItemOrdenRequest struct {
	Descripcion string `json:"descripcion" validate:"required,notblank,max=200"`
	Cantidad    int    `json:"cantidad" validate:"gt=0"`
	Notas       string `json:"notas" validate:"max=300"`
}

// CreateOrdenCocinaRequest envío de una comanda a un área de producción.
type CreateOrdenCocinaRequest struct {
	Mesa             string             `json:"mesa" validate:"required,notblank,max=20"`
	AreaProduccionID string             `json:"area_produccion_id" validate:"required,notblank"`
	Items            []ItemOrdenRequest `json:"items" validate:"required,min=1,dive"`
	Notas            string             `json:"notas" validate:"max=500"`
}

// CambiarEstadoOrdenRequest transición de una orden.
type CambiarEstadoOrdenRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente en_preparacion lista entregada cancelada"`
}

// FiltroOrdenesRequest query de GET /api/cocina/ordenes (estado admite lista separada por comas).
type FiltroOrdenesRequest struct {
	Estado string `query:"estado"`
	AreaID string `query:"area_id"`
}

type OrdenCocinaResponse struct {
	ID               string             `json:"id"`
	Mesa             string             `json:"mesa"`
	AreaProduccionID string             `json:"area_produccion_id"`
	Items            []entity.ItemOrden `json:"items"`
	Notas            string             `json:"notas"`
	Estado           entity.EstadoOrden `json:"estado"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func NewOrdenCocinaResponse(o *entity.OrdenCocina) OrdenCocinaResponse {
	items := o.Items
	if items == nil {
		items = []entity.ItemOrden{}
	}
	return OrdenCocinaResponse{
		ID:               o.ID,
		Mesa:             o.Mesa,
		AreaProduccionID: o.AreaProduccionID,
		Items:            items,
		Notas:            o.Notas,
		Estado:           o.Estado,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
