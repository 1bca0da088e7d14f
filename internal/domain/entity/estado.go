package entity

// Estado es el ciclo de vida de un registro de catálogo. Nunca se borra físicamente:
// desactivar deja el registro consultable y las referencias históricas siguen siendo válidas.
type Estado string

const (
	EstadoActivo   Estado = "activo"
	EstadoInactivo Estado = "inactivo"
)

// Valid informa si el estado es uno de los conocidos.
func (e Estado) Valid() bool {
	return e == EstadoActivo || e == EstadoInactivo
}

// Activo informa si el registro aparece en los listados por defecto.
func (e Estado) Activo() bool { return e == EstadoActivo }

// EstadoDesdeBool traduce el flag `activo` del contrato HTTP al ciclo de vida.
func EstadoDesdeBool(activo bool) Estado {
	if activo {
		return EstadoActivo
	}
	return EstadoInactivo
}
