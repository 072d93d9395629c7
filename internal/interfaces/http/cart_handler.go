package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/cart"
	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/application/quote"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// CartHandler expone el carrito compartido del proceso.
type CartHandler struct {
	cart  *cart.Store
	panel *cart.Panel
	quote *quote.Service
}

// NewCartHandler crea el handler del carrito, su panel y la cotización.
func NewCartHandler(c *cart.Store, panel *cart.Panel, q *quote.Service) *CartHandler {
	return &CartHandler{cart: c, panel: panel, quote: q}
}

func (h *CartHandler) response() dto.CartResponse {
	snap := h.cart.Snapshot()
	return dto.CartResponse{
		Items:        snap.Items,
		Count:        snap.Count,
		Total:        snap.Total,
		PanelAbierto: h.panel.IsOpen(),
		Version:      snap.Version,
	}
}

// Get godoc
// @Summary      Ver carrito
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.response())
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Description  Suma a la línea (id, color) existente o agrega una nueva. cantidad omitida = 1.
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Línea a agregar"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/carrito/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	if in.Cantidad == 0 {
		in.Cantidad = 1
	}
	item := entity.CartItem{ID: in.ID, Nombre: in.Nombre, Precio: in.Precio, Color: in.Color, Imagen: in.Imagen}
	if err := h.cart.AddToCart(item, in.Cantidad); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.response())
}

// UpdateQuantity godoc
// @Summary      Fijar cantidad de una línea
// @Description  cantidad ≤ 0 elimina la línea; sin efecto si la línea no existe.
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateQuantityRequest  true  "Cantidad y color"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/carrito/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	h.cart.UpdateQuantity(id, in.Cantidad, in.Color)
	return c.JSON(h.response())
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         carrito
// @Produce      json
// @Param        id     path   int     true   "ID del producto"
// @Param        color  query  string  false  "Color de la variante"
// @Success      200    {object}  dto.CartResponse
// @Router       /api/carrito/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	h.cart.RemoveFromCart(id, c.Query("color"))
	return c.JSON(h.response())
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/carrito [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.cart.ClearCart()
	return c.JSON(h.response())
}

// SetPanel godoc
// @Summary      Abrir o cerrar el panel del carrito
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "{\"abierto\": true}"
// @Success      200   {object}  dto.CartResponse
// @Router       /api/carrito/panel [put]
func (h *CartHandler) SetPanel(c *fiber.Ctx) error {
	var in struct {
		Abierto *bool `json:"abierto"`
	}
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	switch {
	case in.Abierto == nil:
		h.panel.Toggle()
	case *in.Abierto:
		h.panel.Open()
	default:
		h.panel.Close()
	}
	return c.JSON(h.response())
}

// Quote godoc
// @Summary      Cotización del carrito en PDF
// @Tags         carrito
// @Produce      application/pdf
// @Success      200
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/carrito/cotizacion.pdf [get]
func (h *CartHandler) Quote(c *fiber.Ctx) error {
	out, q, err := h.quote.PDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="cotizacion-%s.pdf"`, q.Numero))
	return c.Send(out)
}
