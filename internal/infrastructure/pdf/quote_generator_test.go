package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

func TestGenerateQuotePDF(t *testing.T) {
	q := dto.Quote{
		Numero:   "A1B2C3",
		Fecha:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Validez:  7 * 24 * time.Hour,
		Emisor:   dto.Emisor{Nombre: "Mueblería Iris", Direccion: "Av. Matta 123", Telefono: "+56 2 2222 2222"},
		Cliente:  &entity.User{Nombre: "Ana", Apellido: "Pérez", Email: "ana@iris.cl"},
		Items:    []entity.CartItem{{ID: 1, Nombre: "Sofa", Precio: 10000, Cantidad: 2, Color: "gris"}},
		Total:    decimal.NewFromInt(20000),
		Unidades: 2,
	}

	out, err := NewQuoteGenerator().GenerateQuotePDF(context.Background(), q)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateQuotePDF_SinLineas(t *testing.T) {
	_, err := NewQuoteGenerator().GenerateQuotePDF(context.Background(), dto.Quote{})
	assert.Error(t, err)
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, "—", nonEmpty("", "—"))
	assert.Equal(t, "x", nonEmpty("x", "—"))
}
