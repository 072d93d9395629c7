package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/application/events"
)

// EventHandler permite a cualquier isla emitir el evento agregar-al-carrito.
type EventHandler struct {
	bus *events.Bus
}

// NewEventHandler crea el handler que publica eventos en el bus.
func NewEventHandler(bus *events.Bus) *EventHandler {
	return &EventHandler{bus: bus}
}

// AgregarAlCarrito godoc
// @Summary      Emitir evento agregar-al-carrito
// @Description  Lo consume la UI del carrito: agrega la línea y abre el panel.
// @Tags         eventos
// @Accept       json
// @Produce      json
// @Param        body  body  events.AgregarAlCarrito  true  "Payload del evento"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/eventos/agregar-al-carrito [post]
func (h *EventHandler) AgregarAlCarrito(c *fiber.Ctx) error {
	var in events.AgregarAlCarrito
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return validationError(c, err)
	}
	ev, err := h.bus.AgregarAlCarrito.Publish(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"event_id": ev.ID.String(), "tipo": ev.Tipo})
}
