package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/inventario"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// InventarioHandler movimientos, indicadores y reportes de insumos.
// El CRUD de insumos lo sirve CRUDHandler.
type InventarioHandler struct {
	insumos     *inventario.InsumoUseCase
	movimientos *inventario.RegisterMovementUseCase
	reposicion  *inventario.ReplenishmentUseCase
	reportes    *inventario.ReporteUseCase
	log         *logger.Logger
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(
	insumos *inventario.InsumoUseCase,
	movimientos *inventario.RegisterMovementUseCase,
	reposicion *inventario.ReplenishmentUseCase,
	reportes *inventario.ReporteUseCase,
	log *logger.Logger,
) *InventarioHandler {
	return &InventarioHandler{insumos: insumos, movimientos: movimientos, reposicion: reposicion, reportes: reportes, log: log}
}

// RegistrarMovimiento godoc
// @Summary      Registrar entrada, salida o ajuste de un insumo
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del insumo"
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "tipo, cantidad, costo_unitario"
// @Success      201   {object}  dto.Envelope[dto.MovimientoRegistradoResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/insumos/{id}/movimientos [post]
func (h *InventarioHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fallo("UNAUTHORIZED", "user_id requerido"))
	}
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.movimientos.RegistrarMovimiento(c.UserContext(), c.Params("id"), userID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Ok(*out))
}

// Movimientos godoc
// @Summary      Kardex del insumo (más reciente primero)
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del insumo"
// @Param        limit  query  int     false  "máximo 500, por defecto 100"
// @Success      200  {object}  dto.Envelope[[]dto.MovimientoResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/insumos/{id}/movimientos [get]
func (h *InventarioHandler) Movimientos(c *fiber.Ctx) error {
	out, err := h.insumos.Movimientos(c.UserContext(), c.Params("id"), c.QueryInt("limit", 100))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		out = []dto.MovimientoResponse{}
	}
	return c.JSON(dto.Ok(out))
}

// Estadisticas godoc
// @Summary      Indicadores del inventario
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope[dto.EstadisticasInventarioResponse]
// @Router       /api/inventario/estadisticas [get]
func (h *InventarioHandler) Estadisticas(c *fiber.Ctx) error {
	out, err := h.reposicion.Estadisticas(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.Ok(*out))
}

// Reabastecimiento godoc
// @Summary      Insumos bajo el mínimo con la cantidad sugerida de compra
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope[[]dto.ReabastecimientoDTO]
// @Router       /api/inventario/reabastecimiento [get]
func (h *InventarioHandler) Reabastecimiento(c *fiber.Ctx) error {
	out, err := h.reposicion.Reabastecimiento(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		out = []dto.ReabastecimientoDTO{}
	}
	return c.JSON(dto.Ok(out))
}

// Reporte godoc
// @Summary      Descargar reporte de inventario (xlsx o pdf)
// @Tags         inventario
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        formato  path  string  true  "xlsx | pdf"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario/reporte.{formato} [get]
func (h *InventarioHandler) Reporte(c *fiber.Ctx) error {
	formato := c.Params("formato")
	b, contentType, err := h.reportes.Exportar(c.UserContext(), formato)
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.`+formato+`"`)
	return c.Send(b)
}
