package dto

import (
	"github.com/shopspring/decimal"

	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// AddToCartRequest cuerpo para agregar una línea.
type AddToCartRequest struct {
	ID       int     `json:"id" validate:"required,gt=0"`
	Nombre   string  `json:"nombre" validate:"required"`
	Precio   float64 `json:"precio" validate:"gte=0"`
	Cantidad int     `json:"cantidad" validate:"omitempty,gt=0,max=9999"`
	Color    string  `json:"color,omitempty"`
	Imagen   string  `json:"imagen,omitempty"`
}

// UpdateQuantityRequest cuerpo para fijar la cantidad (≤ 0 elimina, máximo 9999).
type UpdateQuantityRequest struct {
	Cantidad int    `json:"cantidad" validate:"max=9999"`
	Color    string `json:"color,omitempty"`
}

// CartResponse carrito con agregados y estado del panel.
type CartResponse struct {
	Items        []entity.CartItem `json:"items"`
	Count        int               `json:"count"`
	Total        decimal.Decimal   `json:"total"`
	PanelAbierto bool              `json:"panelAbierto"`
	Version      uint64            `json:"version"`
}

// NavegacionResponse último destino pedido por la tienda (por ejemplo tras logout).
type NavegacionResponse struct {
	Path    string `json:"path"`
	Version uint64 `json:"version"`
}

// StateResponse snapshot conjunto para islas que hacen polling.
type StateResponse struct {
	Carrito    CartResponse        `json:"carrito"`
	Sesion     SessionResponse     `json:"sesion"`
	Navegacion *NavegacionResponse `json:"navegacion,omitempty"`
}
