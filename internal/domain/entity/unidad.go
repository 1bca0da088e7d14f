package entity

import "time"

// Unidad de medida del catálogo administrado. Clave es única (sin distinguir mayúsculas).
type Unidad struct {
	Catalogo
	Clave       string
	Abreviacion string
}

// UnidadSync es la forma de lectura que entrega la integración externa de sincronización.
// Es un contrato distinto de Unidad: no se asume equivalencia campo a campo ni se mezclan en lecturas.
type UnidadSync struct {
	ID          string
	Clave       string
	Nombre      string
	Abreviacion string
	UsuarioULID string
	EmpresaULID string
	FechaSync   time.Time
}
