package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/validation"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// CasoCRUD es la forma común de los use cases de catálogo, clientes e insumos.
type CasoCRUD[R, C, U any] interface {
	List(ctx context.Context, filtro repository.Filtro) ([]R, error)
	GetByID(ctx context.Context, id string) (*R, error)
	Create(ctx context.Context, in C) (*R, error)
	Update(ctx context.Context, id string, in U) (*R, error)
	SetEstado(ctx context.Context, id string, activo bool) (*R, error)
}

// CRUDHandler expone un CasoCRUD como recurso REST con respuestas envelope.
type CRUDHandler[R, C, U any] struct {
	uc  CasoCRUD[R, C, U]
	log *logger.Logger
}

// NewCRUDHandler construye el handler.
func NewCRUDHandler[R, C, U any](uc CasoCRUD[R, C, U], log *logger.Logger) *CRUDHandler[R, C, U] {
	return &CRUDHandler[R, C, U]{uc: uc, log: log}
}

// Montar registra las rutas sobre el grupo. parcial elige PATCH en lugar de PUT para la
// actualización; escritura son los middlewares que protegen las mutaciones.
func (h *CRUDHandler[R, C, U]) Montar(r fiber.Router, parcial bool, escritura ...fiber.Handler) {
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Post("/", cadena(escritura, h.Create)...)
	if parcial {
		r.Patch("/:id", cadena(escritura, h.Update)...)
	} else {
		r.Put("/:id", cadena(escritura, h.Update)...)
	}
	r.Patch("/:id/estado", cadena(escritura, h.SetEstado)...)
}

// List godoc
// @Summary      Listar registros (solo activos salvo incluir_inactivos=true)
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Param        incluir_inactivos  query  bool  false  "incluye los inactivos"
// @Success      200  {object}  dto.Envelope[any]
// @Router       /api/catalogos/{kind} [get]
func (h *CRUDHandler[R, C, U]) List(c *fiber.Ctx) error {
	filtro, err := filtroDesdeQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), filtro)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		out = []R{}
	}
	return c.JSON(dto.Ok(out))
}

// GetByID godoc
// @Summary      Obtener por ID (también inactivos)
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.Envelope[any]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogos/{kind}/{id} [get]
func (h *CRUDHandler[R, C, U]) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.Ok(*out))
}

// Create godoc
// @Summary      Crear registro (nace activo)
// @Tags         catalogos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.Envelope[any]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/catalogos/{kind} [post]
func (h *CRUDHandler[R, C, U]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Ok(*out))
}

// Update godoc
// @Summary      Actualizar registro
// @Tags         catalogos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.Envelope[any]
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogos/{kind}/{id} [put]
func (h *CRUDHandler[R, C, U]) Update(c *fiber.Ctx) error {
	var in U
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.Ok(*out))
}

// SetEstado godoc
// @Summary      Activar o desactivar (soft-disable)
// @Tags         catalogos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID"
// @Param        body  body  dto.SetEstadoRequest  true  "activo"
// @Success      200   {object}  dto.Envelope[any]
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogos/{kind}/{id}/estado [patch]
func (h *CRUDHandler[R, C, U]) SetEstado(c *fiber.Ctx) error {
	var in dto.SetEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	if err := validation.Validate(in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.SetEstado(c.UserContext(), c.Params("id"), *in.Activo)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.Ok(*out))
}

// cadena copia los middlewares antes de agregar el handler final.
func cadena(mw []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(mw)+1)
	return append(append(out, mw...), h)
}

func cuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fallo("INVALID_BODY", "cuerpo inválido"))
}

// filtroDesdeQuery lee ?incluir_inactivos=true|false.
func filtroDesdeQuery(c *fiber.Ctx) (repository.Filtro, error) {
	raw := c.Query("incluir_inactivos")
	if raw == "" {
		return repository.Filtro{}, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return repository.Filtro{}, fiber.NewError(fiber.StatusBadRequest, "incluir_inactivos debe ser true o false")
	}
	return repository.Filtro{IncluirInactivos: v}, nil
}
