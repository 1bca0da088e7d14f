package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// UnidadHandler rutas de unidades que no son CRUD: contrato de sincronización y conciliación.
type UnidadHandler struct {
	uc  *usecase.UnidadUseCase
	log *logger.Logger
}

func NewUnidadHandler(uc *usecase.UnidadUseCase, log *logger.Logger) *UnidadHandler {
	return &UnidadHandler{uc: uc, log: log}
}

// ListSync godoc
// @Summary      Unidades en el contrato de sincronización (ULIDs)
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope[[]dto.UnidadSyncResponse]
// @Router       /api/catalogos/unidades-sync [get]
func (h *UnidadHandler) ListSync(c *fiber.Ctx) error {
	out, err := h.uc.ListSync(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		out = []dto.UnidadSyncResponse{}
	}
	return c.JSON(dto.Ok(out))
}

// Conciliar godoc
// @Summary      Compara el catálogo de unidades con el contrato de sincronización (solo lectura)
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope[dto.ConciliacionUnidadesResponse]
// @Router       /api/catalogos/unidades/conciliacion [get]
func (h *UnidadHandler) Conciliar(c *fiber.Ctx) error {
	out, err := h.uc.Conciliar(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.Ok(*out))
}

// SubgrupoHandler lista los subgrupos de un grupo.
type SubgrupoHandler struct {
	uc  *usecase.SubgrupoUseCase
	log *logger.Logger
}

func NewSubgrupoHandler(uc *usecase.SubgrupoUseCase, log *logger.Logger) *SubgrupoHandler {
	return &SubgrupoHandler{uc: uc, log: log}
}

// ListByGrupo godoc
// @Summary      Subgrupos de un grupo
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del grupo"
// @Success      200  {object}  dto.Envelope[[]dto.SubgrupoVista]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogos/grupos/{id}/subgrupos [get]
func (h *SubgrupoHandler) ListByGrupo(c *fiber.Ctx) error {
	filtro, err := filtroDesdeQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListByGrupo(c.UserContext(), c.Params("id"), filtro)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		out = []dto.SubgrupoVista{}
	}
	return c.JSON(dto.Ok(out))
}
