// Package app arma el grafo de dependencias (repositorios → casos de uso → handlers)
// para cualquiera de los dos drivers de almacenamiento.
package app

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/inventario"
	"github.com/jhoicas/restaurante-api/internal/application/pagina"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/excel"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/memoria"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres"
	apphttp "github.com/jhoicas/restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// Repositorios son los puertos de persistencia de un driver.
type Repositorios struct {
	AreasProduccion repository.AreaProduccionRepository
	Grupos          repository.GrupoRepository
	Subgrupos       repository.SubgrupoRepository
	MetodosPago     repository.MetodoPagoRepository
	TiposCliente    repository.TipoClienteRepository
	Unidades        repository.UnidadRepository
	UnidadesSync    repository.UnidadSyncRepository
	Clientes        repository.ClienteRepository
	Usuarios        repository.UsuarioRepository
	OrdenesCocina   repository.OrdenCocinaRepository
	Insumos         repository.InsumoRepository
	Movimientos     repository.MovimientoRepository
	Tx              inventario.TxRunner
}

// Postgres repositorios sobre el pool de pgx.
func Postgres(pool *pgxpool.Pool) Repositorios {
	return Repositorios{
		AreasProduccion: postgres.NewAreaProduccionRepository(pool),
		Grupos:          postgres.NewGrupoRepository(pool),
		Subgrupos:       postgres.NewSubgrupoRepository(pool),
		MetodosPago:     postgres.NewMetodoPagoRepository(pool),
		TiposCliente:    postgres.NewTipoClienteRepository(pool),
		Unidades:        postgres.NewUnidadRepository(pool),
		UnidadesSync:    postgres.NewUnidadSyncRepository(pool),
		Clientes:        postgres.NewClienteRepository(pool),
		Usuarios:        postgres.NewUsuarioRepository(pool),
		OrdenesCocina:   postgres.NewOrdenCocinaRepository(pool),
		Insumos:         postgres.NewInsumoRepository(pool),
		Movimientos:     postgres.NewMovimientoRepository(pool),
		Tx:              postgres.NewTxRunner(pool),
	}
}

// Memoria repositorios sobre un Store en memoria.
func Memoria(s *memoria.Store) Repositorios {
	return Repositorios{
		AreasProduccion: s.AreasProduccion(),
		Grupos:          s.Grupos(),
		Subgrupos:       s.Subgrupos(),
		MetodosPago:     s.MetodosPago(),
		TiposCliente:    s.TiposCliente(),
		Unidades:        s.Unidades(),
		UnidadesSync:    s.UnidadesSync(),
		Clientes:        s.Clientes(),
		Usuarios:        s.Usuarios(),
		OrdenesCocina:   s.OrdenesCocina(),
		Insumos:         s.Insumos(),
		Movimientos:     s.Movimientos(),
		Tx:              s.TxRunner(),
	}
}

// Opciones ajustes transversales del contenedor.
type Opciones struct {
	JWT        auth.JWTConfig
	Clock      clock.Clock
	Observador pagina.Observador // nil = sin métricas de páginas
	Log        *logger.Logger
	BcryptCost int // 0 = bcrypt.DefaultCost
}

// Contenedor casos de uso listos para usar por la API y la CLI.
type Contenedor struct {
	Auth             *auth.AuthUseCase
	AreasProduccion  *usecase.AreaProduccionUseCase
	Grupos           *usecase.GrupoUseCase
	Subgrupos        *usecase.SubgrupoUseCase
	MetodosPago      *usecase.MetodoPagoUseCase
	TiposCliente     *usecase.TipoClienteUseCase
	Unidades         *usecase.UnidadUseCase
	Clientes         *usecase.ClienteUseCase
	OrdenesCocina    *usecase.OrdenCocinaUseCase
	Insumos          *inventario.InsumoUseCase
	RegisterMovement *inventario.RegisterMovementUseCase
	Reposicion       *inventario.ReplenishmentUseCase
	Reportes         *inventario.ReporteUseCase
	Paginas          *pagina.Orquestador

	// Clock es el reloj con el que se emiten y se validan los tokens.
	Clock clock.Clock
}

// Nuevo construye todos los casos de uso sobre los repositorios dados.
func Nuevo(r Repositorios, o Opciones) *Contenedor {
	clk := o.Clock
	if clk == nil {
		clk = clock.NewRealClock()
	}
	log := o.Log
	if log == nil {
		log = logger.Nop()
	}
	authUC := auth.NewAuthUseCase(r.Usuarios, o.JWT, clk)
	if o.BcryptCost > 0 {
		authUC = authUC.WithBcryptCost(o.BcryptCost)
	}
	return &Contenedor{
		Clock:            clk,
		Auth:             authUC,
		AreasProduccion:  usecase.NewAreaProduccionUseCase(r.AreasProduccion, clk),
		Grupos:           usecase.NewGrupoUseCase(r.Grupos, clk),
		Subgrupos:        usecase.NewSubgrupoUseCase(r.Subgrupos, r.Grupos, clk),
		MetodosPago:      usecase.NewMetodoPagoUseCase(r.MetodosPago, clk),
		TiposCliente:     usecase.NewTipoClienteUseCase(r.TiposCliente, clk),
		Unidades:         usecase.NewUnidadUseCase(r.Unidades, r.UnidadesSync, clk),
		Clientes:         usecase.NewClienteUseCase(r.Clientes, r.TiposCliente, clk),
		OrdenesCocina:    usecase.NewOrdenCocinaUseCase(r.OrdenesCocina, r.AreasProduccion, clk),
		Insumos:          inventario.NewInsumoUseCase(r.Insumos, r.Movimientos, r.Unidades, r.Grupos, clk),
		RegisterMovement: inventario.NewRegisterMovementUseCase(r.Tx, clk),
		Reposicion:       inventario.NewReplenishmentUseCase(r.Insumos),
		Reportes:         inventario.NewReporteUseCase(r.Insumos, clk, excel.NewReporteInventario(), pdf.NewReporteInventario()),
		Paginas: pagina.NewOrquestador(pagina.Fuentes{
			AreasProduccion: r.AreasProduccion,
			Grupos:          r.Grupos,
			Subgrupos:       r.Subgrupos,
			MetodosPago:     r.MetodosPago,
			TiposCliente:    r.TiposCliente,
			Unidades:        r.Unidades,
			Clientes:        r.Clientes,
			Insumos:         r.Insumos,
			Estadisticas:    r.Insumos,
			Ordenes:         r.OrdenesCocina,
		}, o.Observador, log),
	}
}

// RouterDeps adapta el contenedor a las dependencias del router HTTP.
func (c *Contenedor) RouterDeps(jwtSecret string, log *logger.Logger) apphttp.RouterDeps {
	return apphttp.RouterDeps{
		AuthUC:            c.Auth,
		AreasProduccionUC: c.AreasProduccion,
		GruposUC:          c.Grupos,
		SubgruposUC:       c.Subgrupos,
		MetodosPagoUC:     c.MetodosPago,
		TiposClienteUC:    c.TiposCliente,
		UnidadesUC:        c.Unidades,
		ClientesUC:        c.Clientes,
		OrdenesUC:         c.OrdenesCocina,
		InsumosUC:         c.Insumos,
		RegisterMovement:  c.RegisterMovement,
		Reposicion:        c.Reposicion,
		Reportes:          c.Reportes,
		Paginas:           c.Paginas,
		JWTSecret:         jwtSecret,
		Clock:             c.Clock,
		Log:               log,
	}
}
