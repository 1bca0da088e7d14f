package dto

// Props de cada página de administración. Los nombres JSON son los que espera la vista.

type AreasProduccionProps struct {
	AreasProduccion []AreaProduccionResponse `json:"areasProduccion"`
}

type GruposProps struct {
	InitialData []GrupoResponse `json:"initialData"`
}

type MetodosPagoProps struct {
	Data []MetodoPagoResponse `json:"data"`
}

type SubgruposProps struct {
	Subgrupos []SubgrupoVista `json:"subgrupos"`
	Grupos    []GrupoResponse `json:"grupos"`
}

type TiposClienteProps struct {
	Data []TipoClienteResponse `json:"data"`
}

type UnidadesProps struct {
	Unidades []UnidadResponse `json:"unidades"`
}

type InventarioProps struct {
	Insumos      []InsumoResponse               `json:"insumos"`
	Estadisticas EstadisticasInventarioResponse `json:"estadisticas"`
}

type ClientesProps struct {
	Clientes     []ClienteResponse     `json:"clientes"`
	TiposCliente []TipoClienteResponse `json:"tiposCliente"`
}

type CocinaProps struct {
	Ordenes         []OrdenCocinaResponse    `json:"ordenes"`
	AreasProduccion []AreaProduccionResponse `json:"areasProduccion"`
}
