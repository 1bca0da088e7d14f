package entity

// Subgrupo pertenece a un Grupo (GrupoID debe existir al escribir).
type Subgrupo struct {
	Catalogo
	GrupoID string
}
