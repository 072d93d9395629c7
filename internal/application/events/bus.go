package events

import "github.com/rs/zerolog"

// TipoAgregarAlCarrito nombre del evento "agregar al carrito".
const TipoAgregarAlCarrito = "muebleria:agregar-al-carrito"

// AgregarAlCarrito payload que emiten las vistas de catálogo y detalle de producto.
type AgregarAlCarrito struct {
	ProductID int     `json:"productId" validate:"required,gt=0"`
	Nombre    string  `json:"nombre" validate:"required"`
	Precio    float64 `json:"precio" validate:"gte=0"`
	Cantidad  int     `json:"cantidad" validate:"required,gt=0,max=9999"`
	Color     string  `json:"color,omitempty"`
	Imagen    string  `json:"imagen,omitempty"`
}

// Bus agrupa los tópicos de la tienda. Es un singleton del proceso.
type Bus struct {
	AgregarAlCarrito *Topic[AgregarAlCarrito]
}

// NewBus crea los tópicos vacíos.
func NewBus(log zerolog.Logger) *Bus {
	return &Bus{
		AgregarAlCarrito: NewTopic[AgregarAlCarrito](TipoAgregarAlCarrito, log),
	}
}
