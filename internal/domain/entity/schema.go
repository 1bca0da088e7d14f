package entity

// Kind identifica un tipo de catálogo.
type Kind string

const (
	KindAreasProduccion Kind = "areas_produccion"
	KindGrupos          Kind = "grupos"
	KindSubgrupos       Kind = "subgrupos"
	KindMetodosPago     Kind = "metodos_pago"
	KindTiposCliente    Kind = "tipos_cliente"
	KindUnidades        Kind = "unidades"
)

// UpdateMode declara cómo interpreta un catálogo su forma de actualización.
type UpdateMode int

const (
	// UpdateFull reemplaza todos los campos mutables; los opcionales omitidos quedan vacíos.
	UpdateFull UpdateMode = iota
	// UpdatePartial aplica solo los campos presentes; los omitidos conservan su valor.
	UpdatePartial
)

func (m UpdateMode) String() string {
	if m == UpdatePartial {
		return "partial"
	}
	return "full"
}

// Schema describe el contrato de un catálogo.
type Schema struct {
	Kind       Kind
	Titulo     string
	UpdateMode UpdateMode
	Padre      Kind // catálogo referenciado (vacío si no es relacional)
}

// Schemas es el registro de contratos por catálogo. Cada Kind declara exactamente un modo de actualización.
var Schemas = map[Kind]Schema{
	KindAreasProduccion: {Kind: KindAreasProduccion, Titulo: "Áreas de producción", UpdateMode: UpdateFull},
	KindGrupos:          {Kind: KindGrupos, Titulo: "Grupos", UpdateMode: UpdateFull},
	KindSubgrupos:       {Kind: KindSubgrupos, Titulo: "Subgrupos", UpdateMode: UpdateFull, Padre: KindGrupos},
	KindMetodosPago:     {Kind: KindMetodosPago, Titulo: "Métodos de pago", UpdateMode: UpdateFull},
	KindTiposCliente:    {Kind: KindTiposCliente, Titulo: "Tipos de cliente", UpdateMode: UpdatePartial},
	KindUnidades:        {Kind: KindUnidades, Titulo: "Unidades", UpdateMode: UpdateFull},
}

// SchemaDe devuelve el contrato de un catálogo.
func SchemaDe(k Kind) (Schema, bool) {
	s, ok := Schemas[k]
	return s, ok
}
