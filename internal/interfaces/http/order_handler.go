package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/checkout"
	"github.com/muebleria-iris/tienda/internal/application/dto"
)

// OrderHandler checkout del carrito.
type OrderHandler struct {
	svc *checkout.Service
}

// NewOrderHandler crea el handler de pedidos.
func NewOrderHandler(svc *checkout.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create godoc
// @Summary      Confirmar compra
// @Description  Envía el carrito como pedido a nombre del usuario de la sesión y lo vacía.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Datos de despacho"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	p, err := h.svc.Confirmar(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CheckoutResponse{Success: true, Pedido: p})
}
