package cart_test

import (
	"context"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria-iris/tienda/internal/application/cart"
	"github.com/muebleria-iris/tienda/internal/application/events"
	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
	"github.com/muebleria-iris/tienda/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newCart(t *testing.T, repo *storage.MemoryRepository) *cart.Store {
	t.Helper()
	s := cart.NewStore(context.Background(), repo, zerolog.Nop())
	t.Cleanup(s.Close)
	return s
}

func sofa() entity.CartItem { return entity.CartItem{ID: 1, Nombre: "Sofa", Precio: 10000} }

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: carrito vacío + 2 sofás → count 2, total 20000.
func TestAddToCart_CarritoVacio(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())

	require.NoError(t, c.AddToCart(sofa(), 2))

	assert.Equal(t, 2, c.Count())
	assert.True(t, dec(20000).Equal(c.Total()), "total=%s", c.Total())
}

// Escenario B: misma línea (id, color) suma cantidades.
func TestAddToCart_MismaLineaSuma(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	rojo := entity.CartItem{ID: 1, Color: "rojo", Precio: 500}
	require.NoError(t, c.AddToCart(rojo, 1))

	require.NoError(t, c.AddToCart(rojo, 3))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Cantidad)
}

func TestAddToCart_ColorDistintoEsOtraLinea(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	require.NoError(t, c.AddToCart(entity.CartItem{ID: 1, Color: "rojo", Precio: 500}, 1))
	require.NoError(t, c.AddToCart(entity.CartItem{ID: 1, Precio: 500}, 1))
	require.NoError(t, c.AddToCart(entity.CartItem{ID: 1, Color: "azul", Precio: 500}, 1))
	require.NoError(t, c.AddToCart(entity.CartItem{ID: 1, Precio: 500}, 2))

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "rojo", items[0].Color, "se conserva el orden de inserción")
	assert.Equal(t, "", items[1].Color)
	assert.Equal(t, 3, items[1].Cantidad, "sin color solo coincide con sin color")
	assert.Equal(t, "azul", items[2].Color)
}

// Escenario C: cantidad negativa elimina la línea sin error.
func TestUpdateQuantity_NegativaElimina(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	require.NoError(t, c.AddToCart(sofa(), 1))

	c.UpdateQuantity(1, -5, "")

	assert.Empty(t, c.Items())
	assert.Zero(t, c.Count())
}

func TestUpdateQuantity_EsAbsoluta(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	require.NoError(t, c.AddToCart(sofa(), 3))

	c.UpdateQuantity(1, 5, "")
	assert.Equal(t, 5, c.Count())

	c.UpdateQuantity(99, 5, "")
	assert.Equal(t, 5, c.Count(), "línea inexistente: no-op")
}

func TestAddToCart_CantidadInvalida(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())

	assert.ErrorIs(t, c.AddToCart(sofa(), 0), domain.ErrCantidadInvalida)
	assert.ErrorIs(t, c.AddToCart(sofa(), -1), domain.ErrCantidadInvalida)
	assert.ErrorIs(t, c.AddToCart(entity.CartItem{ID: 0, Precio: 1}, 1), domain.ErrInvalidInput)
	assert.Empty(t, c.Items(), "nunca se crea una línea con cantidad ≤ 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregados_SecuenciaDeAdds(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	adds := []struct {
		item     entity.CartItem
		cantidad int
	}{
		{entity.CartItem{ID: 1, Precio: 1000.5}, 2},
		{entity.CartItem{ID: 2, Precio: 250, Color: "nogal"}, 1},
		{entity.CartItem{ID: 1, Precio: 1000.5}, 3},
		{entity.CartItem{ID: 2, Precio: 250, Color: "roble"}, 4},
	}
	wantCount := 0
	for _, a := range adds {
		require.NoError(t, c.AddToCart(a.item, a.cantidad))
		wantCount += a.cantidad
	}

	assert.Equal(t, wantCount, c.Count())

	wantTotal := decimal.Zero
	for _, it := range c.Items() {
		wantTotal = wantTotal.Add(decimal.NewFromFloat(it.Precio).Mul(dec(int64(it.Cantidad))))
	}
	assert.True(t, wantTotal.Equal(c.Total()))
	assert.True(t, decimal.RequireFromString("6252.5").Equal(c.Total()))
}

func TestUpdateQuantityCero_EquivaleARemove(t *testing.T) {
	estados := map[string][]entity.CartItem{
		"vacío":         nil,
		"solo la línea": {{ID: 1, Color: "rojo", Precio: 10}},
		"con otras":     {{ID: 2, Precio: 5}, {ID: 1, Color: "rojo", Precio: 10}, {ID: 1, Precio: 10}},
		"sin la línea":  {{ID: 2, Precio: 5}},
		"otro color":    {{ID: 1, Color: "azul", Precio: 10}},
	}
	for name, prior := range estados {
		t.Run(name, func(t *testing.T) {
			a := newCart(t, storage.NewMemoryRepository())
			b := newCart(t, storage.NewMemoryRepository())
			for _, it := range prior {
				require.NoError(t, a.AddToCart(it, 2))
				require.NoError(t, b.AddToCart(it, 2))
			}

			a.UpdateQuantity(1, 0, "rojo")
			b.RemoveFromCart(1, "rojo")

			assert.Equal(t, b.Items(), a.Items())
		})
	}
}

func TestClearCart_Idempotente(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	require.NoError(t, c.AddToCart(sofa(), 2))

	c.ClearCart()
	assert.Zero(t, c.Count())
	c.ClearCart()
	assert.Zero(t, c.Count())
	assert.True(t, c.Total().IsZero())
}

func TestRemoveFromCart_Ausente(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	require.NoError(t, c.AddToCart(sofa(), 1))
	before := c.Snapshot().Version

	c.RemoveFromCart(42, "")

	assert.Len(t, c.Items(), 1)
	assert.Equal(t, before, c.Snapshot().Version, "no-op no notifica")
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestPersistencia_IdaYVuelta(t *testing.T) {
	repo := storage.NewMemoryRepository()
	c := cart.NewStore(context.Background(), repo, zerolog.Nop())
	require.NoError(t, c.AddToCart(entity.CartItem{ID: 1, Nombre: "Sofa", Precio: 10000, Imagen: "sofa.jpg"}, 2))
	require.NoError(t, c.AddToCart(entity.CartItem{ID: 5, Nombre: "Mesa", Precio: 45000, Color: "nogal"}, 1))
	want := c.Items()
	c.Close()

	reloaded := newCart(t, repo)
	assert.Equal(t, want, reloaded.Items())
}

func TestPersistencia_SlotEsArregloJSON(t *testing.T) {
	repo := storage.NewMemoryRepository()
	c := newCart(t, repo)
	require.NoError(t, c.AddToCart(entity.CartItem{ID: 1, Nombre: "Sofa", Precio: 10000}, 2))
	c.Flush()

	raw, found, err := repo.Load(context.Background(), cart.SlotCarrito)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"id":1,"nombre":"Sofa","precio":10000,"cantidad":2}]`, string(raw))

	c.ClearCart()
	c.Flush()
	raw, _, _ = repo.Load(context.Background(), cart.SlotCarrito)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestPersistencia_SlotCorruptoOAusente(t *testing.T) {
	for name, raw := range map[string]string{
		"json roto": `[{"id":1,`,
		"objeto":    `{"id":1}`,
		"texto":     `hola`,
	} {
		t.Run(name, func(t *testing.T) {
			repo := storage.NewMemoryRepository()
			require.NoError(t, repo.Save(context.Background(), cart.SlotCarrito, []byte(raw)))

			var c *cart.Store
			require.NotPanics(t, func() { c = newCart(t, repo) })
			assert.Empty(t, c.Items())
		})
	}

	assert.Empty(t, newCart(t, storage.NewMemoryRepository()).Items())
}

func TestPersistencia_DescartaLineasInvalidas(t *testing.T) {
	repo := storage.NewMemoryRepository()
	raw := `[{"id":1,"precio":10,"cantidad":0},{"id":2,"precio":10,"cantidad":2},{"id":0,"precio":1,"cantidad":1}]`
	require.NoError(t, repo.Save(context.Background(), cart.SlotCarrito, []byte(raw)))

	c := newCart(t, repo)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 2, c.Items()[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Suscripciones y evento agregar-al-carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscribe_AgregadosConsistentes(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	var snaps []cart.Snapshot
	c.Subscribe(func(s cart.Snapshot) { snaps = append(snaps, s) })

	require.NoError(t, c.AddToCart(sofa(), 2))
	c.UpdateQuantity(1, 1, "")

	require.Len(t, snaps, 3)
	assert.Equal(t, 0, snaps[0].Count)
	assert.Equal(t, 2, snaps[1].Count)
	assert.True(t, dec(20000).Equal(snaps[1].Total))
	assert.Equal(t, 1, snaps[2].Count)
	assert.True(t, dec(10000).Equal(snaps[2].Total))
}

func TestListener_MismoResultadoQueLlamadaDirecta(t *testing.T) {
	bus := events.NewBus(zerolog.Nop())
	viaEvento := newCart(t, storage.NewMemoryRepository())
	panel := cart.NewPanel()
	_, err := cart.AttachListener(bus, viaEvento, panel)
	require.NoError(t, err)

	directo := newCart(t, storage.NewMemoryRepository())

	payloads := []events.AgregarAlCarrito{
		{ProductID: 1, Nombre: "Sofa", Precio: 10000, Cantidad: 2},
		{ProductID: 1, Nombre: "Sofa", Precio: 10000, Cantidad: 1, Color: "gris"},
		{ProductID: 1, Nombre: "Sofa", Precio: 10000, Cantidad: 3},
	}
	for _, p := range payloads {
		_, err := bus.AgregarAlCarrito.Publish(context.Background(), p)
		require.NoError(t, err)
		require.NoError(t, directo.AddToCart(cart.ItemFromEvent(p), p.Cantidad))
	}

	assert.Equal(t, directo.Items(), viaEvento.Items())
	assert.True(t, panel.IsOpen(), "el listener abre el panel")
}

func TestListener_SoloUnConsumidor(t *testing.T) {
	bus := events.NewBus(zerolog.Nop())
	c := newCart(t, storage.NewMemoryRepository())

	_, err := cart.AttachListener(bus, c, cart.NewPanel())
	require.NoError(t, err)
	_, err = cart.AttachListener(bus, c, cart.NewPanel())
	assert.ErrorIs(t, err, domain.ErrHandlerDuplicado)
}

func TestListener_CantidadInvalidaNoAbrePanel(t *testing.T) {
	bus := events.NewBus(zerolog.Nop())
	c := newCart(t, storage.NewMemoryRepository())
	panel := cart.NewPanel()
	_, err := cart.AttachListener(bus, c, panel)
	require.NoError(t, err)

	_, err = bus.AgregarAlCarrito.Publish(context.Background(), events.AgregarAlCarrito{ProductID: 1, Precio: 1, Cantidad: 0})
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)
	assert.False(t, panel.IsOpen())
	assert.Empty(t, c.Items())
}

// ──────────────────────────────────────────────────────────────────────────────
// Límites de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToCart_CantidadEnormeNoDesborda(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	versiones := 0
	c.Subscribe(func(cart.Snapshot) { versiones++ })

	assert.ErrorIs(t, c.AddToCart(sofa(), math.MaxInt), domain.ErrCantidadInvalida)
	assert.ErrorIs(t, c.AddToCart(sofa(), math.MaxInt), domain.ErrCantidadInvalida)
	assert.Empty(t, c.Items())
	assert.Equal(t, 1, versiones, "un rechazo no notifica")
}

func TestAddToCart_MergeSobreElMaximoSeRechaza(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	require.NoError(t, c.AddToCart(sofa(), entity.MaxCantidad))

	err := c.AddToCart(sofa(), 1)

	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)
	assert.Equal(t, entity.MaxCantidad, c.Count())
}

func TestUpdateQuantity_SobreElMaximoQuedaEnElMaximo(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	require.NoError(t, c.AddToCart(sofa(), 1))

	c.UpdateQuantity(1, math.MaxInt, "")

	assert.Equal(t, entity.MaxCantidad, c.Count())
}

func TestAddToCart_PrecioNoFinito(t *testing.T) {
	for _, precio := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1} {
		c := newCart(t, storage.NewMemoryRepository())
		it := entity.CartItem{ID: 3, Nombre: "Mesa", Precio: precio}

		err := c.AddToCart(it, 1)

		assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio %v", precio)
		assert.Empty(t, c.Items())
		assert.True(t, c.Total().IsZero())
	}
}

func TestPersistencia_DescartaLineasFueraDeRango(t *testing.T) {
	repo := storage.NewMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), cart.SlotCarrito, []byte(
		`[{"id":1,"precio":-5,"cantidad":1},{"id":2,"precio":10,"cantidad":100000},{"id":3,"precio":10,"cantidad":2}]`)))

	c := newCart(t, repo)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].ID)
}

func TestDescontar_RestaSoloLoIndicado(t *testing.T) {
	c := newCart(t, storage.NewMemoryRepository())
	require.NoError(t, c.AddToCart(sofa(), 3))
	require.NoError(t, c.AddToCart(entity.CartItem{ID: 2, Precio: 1, Color: "rojo"}, 1))

	c.Descontar([]entity.CartItem{{ID: 1, Cantidad: 2}, {ID: 2, Color: "rojo", Cantidad: 1}})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Cantidad)
}
