package entity

import "time"

// Cliente registrado del restaurante. TipoClienteID debe referenciar un TipoCliente existente.
type Cliente struct {
	ID            string
	Nombre        string
	Documento     string // único
	Email         string
	Telefono      string
	TipoClienteID string
	Estado        Estado
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
