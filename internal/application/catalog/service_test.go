package catalog_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria-iris/tienda/internal/application/cart"
	"github.com/muebleria-iris/tienda/internal/application/catalog"
	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/application/events"
	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
	"github.com/muebleria-iris/tienda/internal/infrastructure/storage"
)

type fakeCatalog struct {
	productos []entity.Producto
	filtro    dto.ProductoFiltro
}

func (f *fakeCatalog) ListProductos(_ context.Context, filtro dto.ProductoFiltro) ([]entity.Producto, error) {
	f.filtro = filtro
	return f.productos, nil
}

func (f *fakeCatalog) GetProducto(_ context.Context, id int) (*entity.Producto, error) {
	for _, p := range f.productos {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalog) ListCategorias(context.Context) ([]entity.Categoria, error) {
	return []entity.Categoria{{ID: 1, Nombre: "Living"}}, nil
}

func newCatalog(t *testing.T) (*catalog.Service, *cart.Store, *cart.Panel, *fakeCatalog) {
	t.Helper()
	fake := &fakeCatalog{productos: []entity.Producto{
		{ID: 1, Nombre: "Sofa", Precio: 10000, Stock: 5, Colores: []string{"gris", "azul"}, Activo: true},
		{ID: 2, Nombre: "Mesa", Precio: 8000, Stock: 1, Activo: true},
		{ID: 3, Nombre: "Silla antigua", Precio: 100, Stock: 9},
	}}
	bus := events.NewBus(zerolog.Nop())
	c := cart.NewStore(context.Background(), storage.NewMemoryRepository(), zerolog.Nop())
	t.Cleanup(c.Close)
	panel := cart.NewPanel()
	detach, err := cart.AttachListener(bus, c, panel)
	require.NoError(t, err)
	t.Cleanup(detach)
	return catalog.NewService(fake, bus, zerolog.Nop()), c, panel, fake
}

func TestProductos_FiltraInactivosYPagina(t *testing.T) {
	svc, _, _, fake := newCatalog(t)

	out, err := svc.Productos(context.Background(), dto.ProductoFiltro{})

	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 20, fake.filtro.Limit)
}

func TestAgregarAlCarrito_PasaPorElEvento(t *testing.T) {
	svc, c, panel, _ := newCatalog(t)

	ev, err := svc.AgregarAlCarrito(context.Background(), 1, "azul", 2)

	require.NoError(t, err)
	assert.Equal(t, events.TipoAgregarAlCarrito, ev.Tipo)
	assert.True(t, panel.IsOpen())
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, entity.CartItem{ID: 1, Nombre: "Sofa", Precio: 10000, Cantidad: 2, Color: "azul"}, items[0])
}

func TestAgregarAlCarrito_Validaciones(t *testing.T) {
	svc, c, _, _ := newCatalog(t)
	ctx := context.Background()

	_, err := svc.AgregarAlCarrito(ctx, 1, "rojo", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.AgregarAlCarrito(ctx, 2, "", 2)
	assert.ErrorIs(t, err, domain.ErrSinStock)

	_, err = svc.AgregarAlCarrito(ctx, 3, "", 1)
	assert.ErrorIs(t, err, domain.ErrProductoInactivo)

	_, err = svc.AgregarAlCarrito(ctx, 99, "", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AgregarAlCarrito(ctx, 1, "", 0)
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)

	assert.Zero(t, c.Count())
}

func TestCategorias(t *testing.T) {
	svc, _, _, _ := newCatalog(t)
	out, err := svc.Categorias(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Living", out[0].Nombre)
}
