package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/restaurante-api/pkg/logger"
)

// RequestLog registra cada petición con método, ruta, status, latencia y request id.
// Debe montarse después de requestid.New().
func RequestLog(log *logger.Logger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		ev.Str("metodo", c.Method()).
			Str("ruta", c.Path()).
			Int("status", status).
			Dur("latencia", time.Since(inicio)).
			Str("request_id", rid).
			Str("usuario", GetUsuario(c)).
			Msg("petición")
		return err
	}
}
