package cart

import (
	"context"

	"github.com/muebleria-iris/tienda/internal/application/events"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// ListenerOwner identifica al consumidor del evento agregar-al-carrito.
const ListenerOwner = "cart-ui"

// AttachListener registra la UI del carrito como único consumidor del evento
// agregar-al-carrito: traduce el payload a AddToCart y abre el panel.
func AttachListener(bus *events.Bus, cart *Store, panel *Panel) (detach func(), err error) {
	return bus.AgregarAlCarrito.Handle(ListenerOwner, func(_ context.Context, ev events.Event[events.AgregarAlCarrito]) error {
		if err := cart.AddToCart(ItemFromEvent(ev.Payload), ev.Payload.Cantidad); err != nil {
			return err
		}
		panel.Open()
		return nil
	})
}

// ItemFromEvent línea de carrito equivalente al payload del evento.
func ItemFromEvent(p events.AgregarAlCarrito) entity.CartItem {
	return entity.CartItem{
		ID:     p.ProductID,
		Nombre: p.Nombre,
		Precio: p.Precio,
		Color:  p.Color,
		Imagen: p.Imagen,
	}
}
