package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/auth"
	"github.com/muebleria-iris/tienda/internal/application/dto"
)

// SessionHandler opera el store de sesión de la tienda.
type SessionHandler struct {
	auth *auth.Store
}

// NewSessionHandler crea el handler de sesión.
func NewSessionHandler(a *auth.Store) *SessionHandler {
	return &SessionHandler{auth: a}
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         sesion
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/sesion [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.auth.Session())
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Los fallos de la API se devuelven como {success:false, error} con 200.
// @Tags         sesion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.AuthResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sesion/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	return c.JSON(h.auth.Login(c.UserContext(), in.Email, in.Password))
}

// Register godoc
// @Summary      Registrar cuenta e iniciar sesión
// @Tags         sesion
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos de la cuenta"
// @Success      200   {object}  dto.AuthResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sesion/register [post]
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	return c.JSON(h.auth.Register(c.UserContext(), in))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         sesion
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/sesion/logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout()
	return c.JSON(fiber.Map{"redirect": auth.HomePath})
}

// Verify godoc
// @Summary      Verificar token contra /auth/me
// @Tags         sesion
// @Produce      json
// @Success      200  {object}  dto.AuthResult
// @Router       /api/sesion/verificar [post]
func (h *SessionHandler) Verify(c *fiber.Ctx) error {
	return c.JSON(h.auth.VerifyToken(c.UserContext()))
}

// Check godoc
// @Summary      Revisar expiración local del token
// @Tags         sesion
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/sesion/check [post]
func (h *SessionHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"valid": h.auth.CheckAuth()})
}
