package entity

// MetodoPago representa una forma de pago aceptada.
// RequiereReferencia indica que el registro del pago debe pedir un número de referencia.
type MetodoPago struct {
	Catalogo
	RequiereReferencia bool
}
