package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/pagina"
)

// PaginaHandler sirve las props de cada página de administración. Siempre responde 200
// con el envelope; success:false indica que la vista debe mostrar el mensaje.
type PaginaHandler struct {
	paginas map[string]func(context.Context) any
}

// NewPaginaHandler registra las páginas del orquestador por nombre.
func NewPaginaHandler(o *pagina.Orquestador) *PaginaHandler {
	return &PaginaHandler{paginas: map[string]func(context.Context) any{
		pagina.PaginaAreasProduccion: func(ctx context.Context) any { return o.AreasProduccion(ctx) },
		pagina.PaginaGrupos:          func(ctx context.Context) any { return o.Grupos(ctx) },
		pagina.PaginaMetodosPago:     func(ctx context.Context) any { return o.MetodosPago(ctx) },
		pagina.PaginaSubgrupos:       func(ctx context.Context) any { return o.Subgrupos(ctx) },
		pagina.PaginaTiposCliente:    func(ctx context.Context) any { return o.TiposCliente(ctx) },
		pagina.PaginaUnidades:        func(ctx context.Context) any { return o.Unidades(ctx) },
		pagina.PaginaInventario:      func(ctx context.Context) any { return o.Inventario(ctx) },
		pagina.PaginaClientes:        func(ctx context.Context) any { return o.Clientes(ctx) },
		pagina.PaginaCocina:          func(ctx context.Context) any { return o.Cocina(ctx) },
	}}
}

// Get godoc
// @Summary      Props de una página de administración
// @Tags         paginas
// @Security     Bearer
// @Produce      json
// @Param        nombre  path  string  true  "areas-produccion | grupos | metodos-pago | subgrupos | tipos-cliente | unidades | inventario | clientes | cocina"
// @Success      200  {object}  dto.Envelope[any]
// @Failure      404  {object}  dto.Envelope[any]
// @Router       /api/paginas/{nombre} [get]
func (h *PaginaHandler) Get(c *fiber.Ctx) error {
	fn, ok := h.paginas[c.Params("nombre")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo[struct{}]("La página solicitada no existe"))
	}
	return c.JSON(fn(c.UserContext()))
}
