package dto

import "github.com/jhoicas/restaurante-api/internal/domain"

// Envelope es la forma uniforme de toda respuesta: {success, data, message}.
// Data es null cuando Success es false; Message es null cuando no hay nada que avisar.
type Envelope[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data"`
	Message *string `json:"message"`
}

// Ok envuelve un resultado exitoso.
func Ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data}
}

// OkConAviso resultado exitoso que además informa algo al usuario (p. ej. datos degradados).
func OkConAviso[T any](data T, msg string) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data, Message: &msg}
}

// Fallo envelope de error: data null y mensaje explicativo.
func Fallo[T any](msg string) Envelope[T] {
	return Envelope[T]{Success: false, Message: &msg}
}

// ErrorResponse cuerpo de error HTTP. Tiene la forma del envelope más el código
// y, para errores de validación, el detalle por campo.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Data    *struct{}           `json:"data"`
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Errores []domain.CampoError `json:"errores,omitempty"`
}

// SetEstadoRequest activa o desactiva un registro (soft-disable).
type SetEstadoRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}
