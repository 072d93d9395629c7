package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxCantidad unidades máximas de una línea del carrito.
const MaxCantidad = 9999

// CartItem representa una línea del carrito.
// Dos líneas son la misma si coinciden ID y Color (color vacío equivale solo a color vacío).
type CartItem struct {
	ID       int     `json:"id"`
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
	Cantidad int     `json:"cantidad"`
	Color    string  `json:"color,omitempty"`
	Imagen   string  `json:"imagen,omitempty"`
}

// SameLine indica si la línea corresponde al producto y variante dados.
func (i CartItem) SameLine(id int, color string) bool {
	return i.ID == id && i.Color == color
}

// PrecioValido precio finito y no negativo.
func PrecioValido(p float64) bool {
	return p >= 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}

// Subtotal precio × cantidad en aritmética decimal.
func (i CartItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Precio).Mul(decimal.NewFromInt(int64(i.Cantidad)))
}
