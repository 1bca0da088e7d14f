package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// CocinaHandler tablero de órdenes de cocina.
type CocinaHandler struct {
	uc  *usecase.OrdenCocinaUseCase
	log *logger.Logger
}

func NewCocinaHandler(uc *usecase.OrdenCocinaUseCase, log *logger.Logger) *CocinaHandler {
	return &CocinaHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Órdenes de cocina (sin estado: solo las no terminadas)
// @Tags         cocina
// @Security     Bearer
// @Produce      json
// @Param        estado   query  string  false  "lista separada por comas"
// @Param        area_id  query  string  false  "área de producción"
// @Success      200  {object}  dto.Envelope[[]dto.OrdenCocinaResponse]
// @Router       /api/cocina/ordenes [get]
func (h *CocinaHandler) List(c *fiber.Ctx) error {
	var q dto.FiltroOrdenesRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fallo("INVALID_QUERY", "parámetros inválidos"))
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		out = []dto.OrdenCocinaResponse{}
	}
	return c.JSON(dto.Ok(out))
}

// Create godoc
// @Summary      Enviar comanda a un área de producción activa
// @Tags         cocina
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrdenCocinaRequest  true  "mesa, área e ítems"
// @Success      201   {object}  dto.Envelope[dto.OrdenCocinaResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/cocina/ordenes [post]
func (h *CocinaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrdenCocinaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Ok(*out))
}

// GetByID godoc
// @Summary      Obtener orden
// @Tags         cocina
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Envelope[dto.OrdenCocinaResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cocina/ordenes/{id} [get]
func (h *CocinaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.Ok(*out))
}

// CambiarEstado godoc
// @Summary      Avanzar o cancelar una orden
// @Tags         cocina
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID de la orden"
// @Param        body  body  dto.CambiarEstadoOrdenRequest  true  "nuevo estado"
// @Success      200   {object}  dto.Envelope[dto.OrdenCocinaResponse]
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cocina/ordenes/{id}/estado [patch]
func (h *CocinaHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.CambiarEstado(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.Ok(*out))
}
