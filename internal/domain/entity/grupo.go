package entity

// Grupo agrupa productos e insumos. Es padre de Subgrupo; desactivarlo no afecta a sus subgrupos.
type Grupo struct {
	Catalogo
}
