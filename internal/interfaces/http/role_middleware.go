package http

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// LocalRol clave de c.Locals con el rol de la sesión.
const LocalRol = "rol"

type sessionReader interface {
	State() entity.AuthState
}

// RequireSession exige sesión iniciada en la tienda y deja el rol en c.Locals.
func RequireSession(s sessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st := s.State()
		if !st.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "debe iniciar sesión"})
		}
		c.Locals(LocalRol, st.User.Rol)
		return c.Next()
	}
}

// RequireRole restringe la ruta a los roles dados. Debe ir después de RequireSession.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		if rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "rol no encontrado en la sesión"})
		}
		if !slices.Contains(roles, rol) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol '" + rol + "' no tiene acceso a este recurso"})
		}
		return c.Next()
	}
}

// GetRol devuelve el rol puesto por RequireSession.
func GetRol(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRol).(string)
	return s
}
