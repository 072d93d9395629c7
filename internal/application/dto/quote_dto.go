package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// Emisor datos de la tienda impresos en la cotización.
type Emisor struct {
	Nombre    string
	Direccion string
	Telefono  string
}

// Quote cotización del carrito actual.
type Quote struct {
	Numero   string
	Fecha    time.Time
	Validez  time.Duration
	Emisor   Emisor
	Cliente  *entity.User
	Items    []entity.CartItem
	Total    decimal.Decimal
	Unidades int
}
