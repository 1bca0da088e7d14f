package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/inventario"
	"github.com/jhoicas/restaurante-api/internal/application/pagina"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC *auth.AuthUseCase

	AreasProduccionUC *usecase.AreaProduccionUseCase
	GruposUC          *usecase.GrupoUseCase
	SubgruposUC       *usecase.SubgrupoUseCase
	MetodosPagoUC     *usecase.MetodoPagoUseCase
	TiposClienteUC    *usecase.TipoClienteUseCase
	UnidadesUC        *usecase.UnidadUseCase
	ClientesUC        *usecase.ClienteUseCase
	OrdenesUC         *usecase.OrdenCocinaUseCase

	InsumosUC        *inventario.InsumoUseCase
	RegisterMovement *inventario.RegisterMovementUseCase
	Reposicion       *inventario.ReplenishmentUseCase
	Reportes         *inventario.ReporteUseCase

	Paginas   *pagina.Orquestador
	JWTSecret string
	Clock     clock.Clock // nil = reloj del sistema
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Clock))
	soloAdmin := RequireRole(entity.RoleAdmin)
	operacion := RequireRole(entity.RoleAdmin, entity.RoleCocina)

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/usuarios", soloAdmin, authHandler.Register)

	// Páginas de administración
	protected.Get("/paginas/:nombre", NewPaginaHandler(deps.Paginas).Get)

	// Catálogos: lectura para cualquier rol, escritura solo admin
	cat := protected.Group("/catalogos")

	unidadHandler := NewUnidadHandler(deps.UnidadesUC, log)
	cat.Get("/unidades-sync", unidadHandler.ListSync)
	cat.Get("/unidades/conciliacion", unidadHandler.Conciliar)
	cat.Get("/grupos/:id/subgrupos", NewSubgrupoHandler(deps.SubgruposUC, log).ListByGrupo)

	montarCatalogo[dto.AreaProduccionResponse, dto.CreateAreaProduccionRequest, dto.UpdateAreaProduccionRequest](cat, entity.KindAreasProduccion, deps.AreasProduccionUC, log, soloAdmin)
	montarCatalogo[dto.GrupoResponse, dto.CreateGrupoRequest, dto.UpdateGrupoRequest](cat, entity.KindGrupos, deps.GruposUC, log, soloAdmin)
	montarCatalogo[dto.SubgrupoVista, dto.CreateSubgrupoRequest, dto.UpdateSubgrupoRequest](cat, entity.KindSubgrupos, deps.SubgruposUC, log, soloAdmin)
	montarCatalogo[dto.MetodoPagoResponse, dto.CreateMetodoPagoRequest, dto.UpdateMetodoPagoRequest](cat, entity.KindMetodosPago, deps.MetodosPagoUC, log, soloAdmin)
	montarCatalogo[dto.TipoClienteResponse, dto.CreateTipoClienteRequest, dto.UpdateTipoClienteRequest](cat, entity.KindTiposCliente, deps.TiposClienteUC, log, soloAdmin)
	montarCatalogo[dto.UnidadResponse, dto.CreateUnidadRequest, dto.UpdateUnidadRequest](cat, entity.KindUnidades, deps.UnidadesUC, log, soloAdmin)

	// Clientes
	NewCRUDHandler[dto.ClienteResponse, dto.CreateClienteRequest, dto.UpdateClienteRequest](deps.ClientesUC, log).
		Montar(protected.Group("/clientes"), false, RequireRole(entity.RoleAdmin, entity.RoleCaja))

	// Cocina
	cocina := NewCocinaHandler(deps.OrdenesUC, log)
	ordenes := protected.Group("/cocina/ordenes")
	ordenes.Get("/", cocina.List)
	ordenes.Post("/", cocina.Create)
	ordenes.Get("/:id", cocina.GetByID)
	ordenes.Patch("/:id/estado", operacion, cocina.CambiarEstado)

	// Inventario
	inv := protected.Group("/inventario")
	invHandler := NewInventarioHandler(deps.InsumosUC, deps.RegisterMovement, deps.Reposicion, deps.Reportes, log)
	inv.Get("/estadisticas", invHandler.Estadisticas)
	inv.Get("/reabastecimiento", invHandler.Reabastecimiento)
	inv.Get("/reporte.:formato", invHandler.Reporte)
	inv.Get("/insumos/:id/movimientos", invHandler.Movimientos)
	inv.Post("/insumos/:id/movimientos", operacion, invHandler.RegistrarMovimiento)
	NewCRUDHandler[dto.InsumoResponse, dto.CreateInsumoRequest, dto.UpdateInsumoRequest](deps.InsumosUC, log).
		Montar(inv.Group("/insumos"), false, soloAdmin)
}

// montarCatalogo publica un catálogo en /catalogos/{kind con guiones}. El verbo de
// actualización sale del modo declarado en su Schema.
func montarCatalogo[R, C, U any](r fiber.Router, k entity.Kind, uc CasoCRUD[R, C, U], log *logger.Logger, escritura ...fiber.Handler) {
	parcial := entity.Schemas[k].UpdateMode == entity.UpdatePartial
	NewCRUDHandler(uc, log).Montar(r.Group("/"+RutaKind(k)), parcial, escritura...)
}

// RutaKind convierte el Kind al segmento de URL: areas_produccion → areas-produccion.
func RutaKind(k entity.Kind) string {
	return strings.ReplaceAll(string(k), "_", "-")
}
