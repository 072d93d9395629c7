package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/auth"
	"github.com/muebleria-iris/tienda/internal/application/dto"
)

// StateHandler snapshot conjunto de carrito y sesión para islas que hacen polling.
type StateHandler struct {
	cart *CartHandler
	auth *auth.Store
	nav  *Navigation
}

// NewStateHandler crea el handler del estado agregado.
func NewStateHandler(cart *CartHandler, a *auth.Store, nav *Navigation) *StateHandler {
	return &StateHandler{cart: cart, auth: a, nav: nav}
}

// Get godoc
// @Summary      Estado de la tienda
// @Description  Cada store informa su versión; una isla refresca cuando cambia.
// @Tags         estado
// @Produce      json
// @Success      200  {object}  dto.StateResponse
// @Router       /api/estado [get]
func (h *StateHandler) Get(c *fiber.Ctx) error {
	out := dto.StateResponse{
		Carrito: h.cart.response(),
		Sesion:  h.auth.Session(),
	}
	if h.nav != nil {
		if path, v := h.nav.Last(); v > 0 {
			out.Navegacion = &dto.NavegacionResponse{Path: path, Version: v}
		}
	}
	return c.JSON(out)
}
