package entity

// AreaProduccion representa un área de producción de la cocina (parrilla, barra, repostería...).
// El nombre es único entre las áreas activas.
type AreaProduccion struct {
	Catalogo
}
