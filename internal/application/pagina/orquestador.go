// Package pagina compone las props de cada página de administración.
//
// Toda página devuelve dto.Envelope y nunca propaga un error: un fallo de
// lectura se convierte en success=false con un mensaje para la vista.
// Cuando una página necesita dos lecturas independientes se lanzan en
// paralelo (fan-out de ancho fijo) y se espera a ambas antes de componer.
package pagina

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Listador es la capacidad mínima de lectura que una página necesita de un catálogo.
type Listador[T any] interface {
	List(ctx context.Context, filtro repository.Filtro) ([]*T, error)
}

// Estadistico lee el resumen de inventario.
type Estadistico interface {
	Estadisticas(ctx context.Context) (*entity.EstadisticasInventario, error)
}

// Tablero lee las órdenes abiertas de cocina.
type Tablero interface {
	List(ctx context.Context, filtro repository.FiltroOrdenes) ([]*entity.OrdenCocina, error)
}

// Observador recibe la duración de cada página, fan-out incluido.
type Observador interface {
	ObservarPagina(pagina string, d time.Duration)
}

// Fuentes agrupa los repositorios que leen las páginas.
type Fuentes struct {
	AreasProduccion Listador[entity.AreaProduccion]
	Grupos          Listador[entity.Grupo]
	Subgrupos       Listador[entity.Subgrupo]
	MetodosPago     Listador[entity.MetodoPago]
	TiposCliente    Listador[entity.TipoCliente]
	Unidades        Listador[entity.Unidad]
	Clientes        Listador[entity.Cliente]
	Insumos         Listador[entity.Insumo]
	Estadisticas    Estadistico
	Ordenes         Tablero
}

// Orquestador arma las props de cada página.
type Orquestador struct {
	f   Fuentes
	obs Observador
	log *logger.Logger
}

// NewOrquestador construye el orquestador. obs puede ser nil.
func NewOrquestador(f Fuentes, obs Observador, log *logger.Logger) *Orquestador {
	if log == nil {
		log = logger.Nop()
	}
	return &Orquestador{f: f, obs: obs, log: log.Named("pagina")}
}

// Las páginas de administración listan también los registros inactivos.
var admin = repository.Filtro{IncluirInactivos: true}

// Nombres de página (rutas /api/paginas/{nombre} y etiqueta de métricas).
const (
	PaginaAreasProduccion = "areas-produccion"
	PaginaGrupos          = "grupos"
	PaginaMetodosPago     = "metodos-pago"
	PaginaSubgrupos       = "subgrupos"
	PaginaTiposCliente    = "tipos-cliente"
	PaginaUnidades        = "unidades"
	PaginaInventario      = "inventario"
	PaginaClientes        = "clientes"
	PaginaCocina          = "cocina"
)

// AreasProduccion: { areasProduccion }.
func (o *Orquestador) AreasProduccion(ctx context.Context) dto.Envelope[dto.AreasProduccionProps] {
	defer o.medir(PaginaAreasProduccion, time.Now())()
	list, err := o.f.AreasProduccion.List(ctx, admin)
	if err != nil {
		return fallo[dto.AreasProduccionProps](o, PaginaAreasProduccion, "las áreas de producción", err)
	}
	return dto.Ok(dto.AreasProduccionProps{AreasProduccion: dto.Lista(list, dto.NewAreaProduccionResponse)})
}

// Grupos: { initialData }.
func (o *Orquestador) Grupos(ctx context.Context) dto.Envelope[dto.GruposProps] {
	defer o.medir(PaginaGrupos, time.Now())()
	list, err := o.f.Grupos.List(ctx, admin)
	if err != nil {
		return fallo[dto.GruposProps](o, PaginaGrupos, "los grupos", err)
	}
	return dto.Ok(dto.GruposProps{InitialData: dto.Lista(list, dto.NewGrupoResponse)})
}

// MetodosPago: { data }.
func (o *Orquestador) MetodosPago(ctx context.Context) dto.Envelope[dto.MetodosPagoProps] {
	defer o.medir(PaginaMetodosPago, time.Now())()
	list, err := o.f.MetodosPago.List(ctx, admin)
	if err != nil {
		return fallo[dto.MetodosPagoProps](o, PaginaMetodosPago, "los métodos de pago", err)
	}
	return dto.Ok(dto.MetodosPagoProps{Data: dto.Lista(list, dto.NewMetodoPagoResponse)})
}

// TiposCliente: { data }.
func (o *Orquestador) TiposCliente(ctx context.Context) dto.Envelope[dto.TiposClienteProps] {
	defer o.medir(PaginaTiposCliente, time.Now())()
	list, err := o.f.TiposCliente.List(ctx, admin)
	if err != nil {
		return fallo[dto.TiposClienteProps](o, PaginaTiposCliente, "los tipos de cliente", err)
	}
	return dto.Ok(dto.TiposClienteProps{Data: dto.Lista(list, dto.NewTipoClienteResponse)})
}

// Unidades: { unidades }. Solo el catálogo administrado; la sincronización se consulta aparte.
func (o *Orquestador) Unidades(ctx context.Context) dto.Envelope[dto.UnidadesProps] {
	defer o.medir(PaginaUnidades, time.Now())()
	list, err := o.f.Unidades.List(ctx, admin)
	if err != nil {
		return fallo[dto.UnidadesProps](o, PaginaUnidades, "las unidades", err)
	}
	return dto.Ok(dto.UnidadesProps{Unidades: dto.Lista(list, dto.NewUnidadResponse)})
}

// Subgrupos: { subgrupos, grupos }. Falla completa: si cualquiera de las dos
// lecturas falla la página falla y la otra lectura se cancela.
func (o *Orquestador) Subgrupos(ctx context.Context) dto.Envelope[dto.SubgruposProps] {
	defer o.medir(PaginaSubgrupos, time.Now())()
	var (
		subgrupos []*entity.Subgrupo
		grupos    []*entity.Grupo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		subgrupos, err = o.f.Subgrupos.List(gctx, admin)
		return etiquetar("subgrupos", err)
	})
	g.Go(func() (err error) {
		grupos, err = o.f.Grupos.List(gctx, admin)
		return etiquetar("grupos", err)
	})
	if err := g.Wait(); err != nil {
		return fallo[dto.SubgruposProps](o, PaginaSubgrupos, "los subgrupos", err)
	}

	activos := make(map[string]bool, len(grupos))
	for _, gr := range grupos {
		activos[gr.ID] = gr.Estado.Activo()
	}
	vistas := make([]dto.SubgrupoVista, 0, len(subgrupos))
	for _, sg := range subgrupos {
		vistas = append(vistas, dto.NewSubgrupoVista(sg, activos[sg.GrupoID]))
	}
	return dto.Ok(dto.SubgruposProps{Subgrupos: vistas, Grupos: dto.Lista(grupos, dto.NewGrupoResponse)})
}

// Inventario: { insumos, estadisticas }. Si fallan las estadísticas la página se
// muestra con estadísticas en cero y un aviso; si fallan los insumos, falla.
func (o *Orquestador) Inventario(ctx context.Context) dto.Envelope[dto.InventarioProps] {
	defer o.medir(PaginaInventario, time.Now())()
	var (
		insumos []*entity.Insumo
		est     *entity.EstadisticasInventario
		errEst  error
		g       errgroup.Group
	)
	g.Go(func() (err error) {
		insumos, err = o.f.Insumos.List(ctx, admin)
		return etiquetar("insumos", err)
	})
	g.Go(func() error {
		est, errEst = o.f.Estadisticas.Estadisticas(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return fallo[dto.InventarioProps](o, PaginaInventario, "los insumos", err)
	}

	props := dto.InventarioProps{Insumos: dto.Lista(insumos, dto.NewInsumoResponse)}
	if errEst != nil {
		props.Estadisticas = dto.NewEstadisticasResponse(nil)
		return degradado(o, PaginaInventario, props, "No se pudieron cargar las estadísticas del inventario", errEst)
	}
	props.Estadisticas = dto.NewEstadisticasResponse(est)
	return dto.Ok(props)
}

// Clientes: { clientes, tiposCliente }. Si fallan los tipos se muestran vacíos con aviso.
func (o *Orquestador) Clientes(ctx context.Context) dto.Envelope[dto.ClientesProps] {
	defer o.medir(PaginaClientes, time.Now())()
	var (
		clientes []*entity.Cliente
		tipos    []*entity.TipoCliente
		errTipos error
		g        errgroup.Group
	)
	g.Go(func() (err error) {
		clientes, err = o.f.Clientes.List(ctx, admin)
		return etiquetar("clientes", err)
	})
	g.Go(func() error {
		tipos, errTipos = o.f.TiposCliente.List(ctx, admin)
		return nil
	})
	if err := g.Wait(); err != nil {
		return fallo[dto.ClientesProps](o, PaginaClientes, "los clientes", err)
	}

	props := dto.ClientesProps{Clientes: dto.Lista(clientes, dto.NewClienteResponse)}
	if errTipos != nil {
		props.TiposCliente = []dto.TipoClienteResponse{}
		return degradado(o, PaginaClientes, props, "No se pudieron cargar los tipos de cliente", errTipos)
	}
	props.TiposCliente = dto.Lista(tipos, dto.NewTipoClienteResponse)
	return dto.Ok(props)
}

// Cocina: { ordenes, areasProduccion }. Falla completa. Solo órdenes abiertas y áreas activas.
func (o *Orquestador) Cocina(ctx context.Context) dto.Envelope[dto.CocinaProps] {
	defer o.medir(PaginaCocina, time.Now())()
	var (
		ordenes []*entity.OrdenCocina
		areas   []*entity.AreaProduccion
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ordenes, err = o.f.Ordenes.List(gctx, repository.FiltroOrdenes{})
		return etiquetar("ordenes", err)
	})
	g.Go(func() (err error) {
		areas, err = o.f.AreasProduccion.List(gctx, repository.Filtro{})
		return etiquetar("areas", err)
	})
	if err := g.Wait(); err != nil {
		return fallo[dto.CocinaProps](o, PaginaCocina, "las órdenes de cocina", err)
	}
	return dto.Ok(dto.CocinaProps{
		Ordenes:         dto.Lista(ordenes, dto.NewOrdenCocinaResponse),
		AreasProduccion: dto.Lista(areas, dto.NewAreaProduccionResponse),
	})
}

func (o *Orquestador) medir(pagina string, inicio time.Time) func() {
	return func() {
		if o.obs != nil {
			o.obs.ObservarPagina(pagina, time.Since(inicio))
		}
	}
}

func etiquetar(fuente string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fuente, err)
}

func fallo[T any](o *Orquestador, pagina, que string, err error) dto.Envelope[T] {
	o.log.Error().Err(err).Str("pagina", pagina).Msg("no se pudo componer la página")
	return dto.Fallo[T](fmt.Sprintf("No se pudieron cargar %s. Intente de nuevo.", que))
}

func degradado[T any](o *Orquestador, pagina string, props T, aviso string, err error) dto.Envelope[T] {
	o.log.Warn().Err(err).Str("pagina", pagina).Msg("página degradada: una fuente secundaria falló")
	return dto.OkConAviso(props, aviso)
}
