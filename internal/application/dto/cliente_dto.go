package dto

import (
	"time"

	"github.com/jhoicas/restaurante-api/internal/domain/entity"
)

// CreateClienteRequest alta de cliente.
type CreateClienteRequest struct {
	Nombre        string `json:"nombre" validate:"required,notblank,max=200"`
	Documento     string `json:"documento" validate:"required,max=30,clave"`
	Email         string `json:"email" validate:"omitempty,email"`
	Telefono      string `json:"telefono" validate:"omitempty,max=30"`
	TipoClienteID string `json:"tipo_cliente_id" validate:"required,notblank"`
}

// UpdateClienteRequest reemplazo completo.
type UpdateClienteRequest struct {
	Nombre        string `json:"nombre" validate:"required,notblank,max=200"`
	Documento     string `json:"documento" validate:"required,max=30,clave"`
	Email         string `json:"email" validate:"omitempty,email"`
	Telefono      string `json:"telefono" validate:"omitempty,max=30"`
	TipoClienteID string `json:"tipo_cliente_id" validate:"required,notblank"`
}

type ClienteResponse struct {
	ID            string        `json:"id"`
	Nombre        string        `json:"nombre"`
	Documento     string        `json:"documento"`
	Email         string        `json:"email"`
	Telefono      string        `json:"telefono"`
	TipoClienteID string        `json:"tipo_cliente_id"`
	Estado        entity.Estado `json:"estado"`
	Activo        bool          `json:"activo"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func NewClienteResponse(c *entity.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Documento:     c.Documento,
		Email:         c.Email,
		Telefono:      c.Telefono,
		TipoClienteID: c.TipoClienteID,
		Estado:        c.Estado,
		Activo:        c.Estado.Activo(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
