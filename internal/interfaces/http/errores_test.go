package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

func leerError(t *testing.T, body io.Reader) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestRespondError_MapeoDeErrores(t *testing.T) {
	casos := []struct {
		nombre string
		err    error
		status int
		code   string
	}{
		{"validacion", domain.NewValidationError("nombre", "notblank", "nombre es obligatorio"), fiber.StatusBadRequest, "VALIDATION"},
		{"no encontrado envuelto", fmt.Errorf("grupo x: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{"usuario no encontrado", domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"integridad", domain.ErrIntegrity, fiber.StatusUnprocessableEntity, "INTEGRITY"},
		{"transicion", domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
		{"existencia", domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"conflicto", domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{"no autorizado", domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"prohibido", domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
		{"almacenamiento", fmt.Errorf("%w: listar: conexión rechazada", domain.ErrStorage), fiber.StatusInternalServerError, "INTERNAL"},
		{"desconocido", errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return respondError(c, logger.Nop(), tc.err) })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			body := leerError(t, resp.Body)
			assert.False(t, body.Success)
			assert.Nil(t, body.Data)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestRespondError_ValidacionIncluyeCampos(t *testing.T) {
	app := fiber.New()
	verr := &domain.ValidationError{Campos: []domain.CampoError{
		{Campo: "usuario", Regla: "min", Mensaje: "usuario debe tener al menos 3 caracteres"},
		{Campo: "pin", Regla: "len", Mensaje: "pin debe tener exactamente 4 caracteres"},
	}}
	app.Get("/", func(c *fiber.Ctx) error { return respondError(c, logger.Nop(), verr) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	body := leerError(t, resp.Body)
	assert.Equal(t, verr.Campos, body.Errores)
}

func TestRespondError_InternoNoFiltraDetalle(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Out: &buf})
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return respondError(c, log, fmt.Errorf("%w: password=secreta", domain.ErrStorage))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	body := leerError(t, resp.Body)
	assert.NotContains(t, body.Message, "secreta")
	assert.Contains(t, buf.String(), "error interno")
}

func TestErrorHandler_RutaInexistente(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.Nop())})
	app.Get("/existe", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/no-existe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "HTTP_404", leerError(t, resp.Body).Code)
}

func TestErrorHandler_ErrorDeDominio(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.Nop())})
	app.Get("/", func(c *fiber.Ctx) error { return domain.ErrDuplicate })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRequestLog_RegistraPeticion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Out: &buf})
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.Nop())})
	app.Use(requestid.New(), RequestLog(log))
	app.Post("/ordenes", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	app.Get("/falla", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusServiceUnavailable, "caído") })

	_, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/ordenes", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/falla", nil))
	require.NoError(t, err)

	lineas := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lineas, 2)

	var primera, segunda map[string]any
	require.NoError(t, json.Unmarshal(lineas[0], &primera))
	require.NoError(t, json.Unmarshal(lineas[1], &segunda))

	assert.Equal(t, "POST", primera["metodo"])
	assert.Equal(t, "/ordenes", primera["ruta"])
	assert.EqualValues(t, fiber.StatusCreated, primera["status"])
	assert.NotEmpty(t, primera["request_id"])
	assert.Equal(t, "info", primera["level"])

	assert.EqualValues(t, fiber.StatusServiceUnavailable, segunda["status"])
	assert.Equal(t, "error", segunda["level"])
}
