package dto

import (
	"github.com/shopspring/decimal"

	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// CheckoutRequest datos de despacho que completa el cliente al confirmar.
type CheckoutRequest struct {
	Direccion string `json:"direccion" validate:"required,max=300"`
	Comuna    string `json:"comuna" validate:"required,max=100"`
	Telefono  string `json:"telefono" validate:"omitempty,max=30"`
	Notas     string `json:"notas" validate:"omitempty,max=500"`
}

// PedidoItem línea del pedido que se envía a la API.
type PedidoItem struct {
	ProductoID     int     `json:"producto_id"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Color          string  `json:"color,omitempty"`
}

// CrearPedidoRequest cuerpo de POST /pedidos.
type CrearPedidoRequest struct {
	ClienteID *int            `json:"cliente_id,omitempty"`
	Direccion string          `json:"direccion"`
	Comuna    string          `json:"comuna"`
	Telefono  string          `json:"telefono,omitempty"`
	Notas     string          `json:"notas,omitempty"`
	Items     []PedidoItem    `json:"items"`
	Total     decimal.Decimal `json:"total"`
}

// CheckoutResponse resultado del checkout.
type CheckoutResponse struct {
	Success bool           `json:"success"`
	Pedido  *entity.Pedido `json:"pedido,omitempty"`
	Error   string         `json:"error,omitempty"`
}
