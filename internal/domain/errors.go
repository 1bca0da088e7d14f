package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrValidation        = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrIntegrity         = errors.New("referencia a un registro inexistente")
	ErrStorage           = errors.New("fallo del almacenamiento")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrInsufficientStock = errors.New("existencia insuficiente")
)

// CampoError describe la primera regla que falló para un campo.
type CampoError struct {
	Campo   string `json:"campo"`
	Regla   string `json:"regla"`
	Mensaje string `json:"mensaje"`
}

// ValidationError agrupa todos los campos inválidos de un objeto.
// errors.Is(err, ErrValidation) es verdadero para cualquier *ValidationError.
type ValidationError struct {
	Campos []CampoError
}

// NewValidationError construye un error de validación de un único campo.
func NewValidationError(campo, regla, mensaje string) *ValidationError {
	return &ValidationError{Campos: []CampoError{{Campo: campo, Regla: regla, Mensaje: mensaje}}}
}

func (e *ValidationError) Error() string {
	if len(e.Campos) == 0 {
		return ErrValidation.Error()
	}
	msgs := make([]string, 0, len(e.Campos))
	for _, c := range e.Campos {
		msgs = append(msgs, c.Mensaje)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Campo devuelve el error asociado a un campo, si existe.
func (e *ValidationError) Campo(nombre string) (CampoError, bool) {
	for _, c := range e.Campos {
		if c.Campo == nombre {
			return c, true
		}
	}
	return CampoError{}, false
}
