package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/muebleria-iris/tienda/pkg/money"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$20.000", money.Format(decimal.NewFromInt(20000)))
	assert.Equal(t, "$1.234.567", money.Format(decimal.NewFromInt(1234567)))
	assert.Equal(t, "$500", money.Format(decimal.NewFromInt(500)))
	assert.Equal(t, "$0", money.Format(decimal.Zero))
	assert.Equal(t, "-$15.000", money.Format(decimal.NewFromInt(-15000)))
}

func TestFormatFloat_Redondea(t *testing.T) {
	assert.Equal(t, "$10.000", money.FormatFloat(9999.6))
}
