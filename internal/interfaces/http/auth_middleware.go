package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/jhoicas/restaurante-api/pkg/jwt"
)

// Locals keys para la identidad del operador en Fiber.
const (
	LocalUserID  = "user_id"
	LocalUsuario = "usuario"
	LocalRole    = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
// La expiración se evalúa con clk, el mismo reloj que emite los tokens; nil usa el del sistema.
func AuthMiddleware(jwtSecret string, clk clock.Clock) fiber.Handler {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fallo("MISSING_TOKEN", "Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fallo("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fallo("MISSING_TOKEN", "token vacío"))
		}
		id, err := jwt.Parse(jwtSecret, tokenString, clk.Now())
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fallo("INVALID_TOKEN", "token inválido o expirado"))
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalUsuario, id.Usuario)
		c.Locals(LocalRole, id.Role)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de AuthMiddleware.
// Un token sin rol responde 401 MISSING_ROLE; un rol no permitido, 403 FORBIDDEN.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fallo("MISSING_ROLE", "el token no incluye rol"))
		}
		if !slices.Contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(fallo("FORBIDDEN", "el rol '"+role+"' no tiene acceso a este recurso"))
		}
		return c.Next()
	}
}

func local(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return local(c, LocalUserID) }

// GetUsuario devuelve el nombre de usuario del token.
func GetUsuario(c *fiber.Ctx) string { return local(c, LocalUsuario) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return local(c, LocalRole) }
