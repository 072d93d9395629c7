// Package money formatea montos en pesos chilenos para la tienda.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Spanish)

// Format redondea a pesos enteros y agrupa miles con punto: 1234567 → "$1.234.567".
func Format(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return "-$" + printer.Sprintf("%d", -n)
	}
	return "$" + printer.Sprintf("%d", n)
}

// FormatFloat es un atajo para precios que llegan como float desde la API.
func FormatFloat(amount float64) string {
	return Format(decimal.NewFromFloat(amount))
}
