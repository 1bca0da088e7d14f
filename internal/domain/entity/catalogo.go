package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Catalogo es la forma base compartida por todas las entidades de catálogo.
type Catalogo struct {
	ID          string
	Nombre      string
	Descripcion string // vacío si no aplica
	Estado      Estado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Base devuelve la forma base (útil para código genérico sobre catálogos).
func (c *Catalogo) Base() *Catalogo { return c }

// ClaveNombre normaliza un nombre para comparaciones de unicidad:
// recorta, colapsa espacios, quita acentos y pliega mayúsculas.
// "  Bébidas  Frías" y "bebidas frias" producen la misma clave.
func ClaveNombre(nombre string) string {
	s := strings.Join(strings.Fields(nombre), " ")
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if sinAcentos, _, err := transform.String(t, s); err == nil {
		s = sinAcentos
	}
	return cases.Fold().String(s)
}
