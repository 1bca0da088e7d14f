package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// fallo arma el cuerpo de error con la forma del envelope.
func fallo(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Success: false, Code: code, Message: msg}
}

// respondError traduce un error de dominio a status HTTP. Los errores de almacenamiento
// y los no clasificados se registran y se responden con un mensaje genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		body := fallo("VALIDATION", "Los datos enviados no son válidos")
		body.Errores = verr.Campos
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fallo("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fallo("NOT_FOUND", "El registro no existe"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(fallo("DUPLICATE", err.Error()))
	case errors.Is(err, domain.ErrIntegrity):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fallo("INTEGRITY", err.Error()))
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(fallo("INVALID_TRANSITION", err.Error()))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(fallo("INSUFFICIENT_STOCK", err.Error()))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fallo("CONFLICT", err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fallo("UNAUTHORIZED", "Credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fallo("FORBIDDEN", "Cuenta inactiva o acceso denegado"))
	}
	log.Error().Err(err).Str("metodo", c.Method()).Str("ruta", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(fallo("INTERNAL", "Error interno del servidor"))
}

// ErrorHandler es el manejador de errores de la app Fiber (rutas inexistentes, pánicos recuperados).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fallo("HTTP_"+strconv.Itoa(fe.Code), fe.Message))
		}
		return respondError(c, log, err)
	}
}
