// Package catalog consulta el catálogo público y arma las líneas de carrito desde él.
package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/application/events"
	"github.com/muebleria-iris/tienda/internal/application/ports"
	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// Service catálogo de productos y categorías.
type Service struct {
	api ports.CatalogAPI
	bus *events.Bus
	log zerolog.Logger
}

// NewService construye el servicio.
func NewService(catalogAPI ports.CatalogAPI, bus *events.Bus, log zerolog.Logger) *Service {
	return &Service{api: catalogAPI, bus: bus, log: log}
}

// Productos lista el catálogo; por defecto solo los activos.
func (s *Service) Productos(ctx context.Context, filtro dto.ProductoFiltro) ([]entity.Producto, error) {
	filtro.DefaultPage()
	items, err := s.api.ListProductos(ctx, filtro)
	if err != nil {
		return nil, fmt.Errorf("catalog: listar productos: %w", err)
	}
	activos := items[:0:0]
	for _, p := range items {
		if p.Activo {
			activos = append(activos, p)
		}
	}
	return activos, nil
}

func (s *Service) Producto(ctx context.Context, id int) (*entity.Producto, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := s.api.GetProducto(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog: producto %d: %w", id, err)
	}
	return p, nil
}

func (s *Service) Categorias(ctx context.Context) ([]entity.Categoria, error) {
	out, err := s.api.ListCategorias(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: listar categorías: %w", err)
	}
	return out, nil
}

// AgregarAlCarrito busca el producto, valida variante y stock, y emite el evento
// "agregar al carrito" con el precio vigente del catálogo.
func (s *Service) AgregarAlCarrito(ctx context.Context, id int, color string, cantidad int) (events.Event[events.AgregarAlCarrito], error) {
	var zero events.Event[events.AgregarAlCarrito]
	if cantidad <= 0 {
		return zero, domain.ErrCantidadInvalida
	}
	p, err := s.Producto(ctx, id)
	if err != nil {
		return zero, err
	}
	if !p.Activo {
		return zero, domain.ErrProductoInactivo
	}
	if color != "" && len(p.Colores) > 0 && !slices.Contains(p.Colores, color) {
		return zero, fmt.Errorf("%w: color %q no disponible", domain.ErrInvalidInput, color)
	}
	if p.Stock < cantidad {
		return zero, fmt.Errorf("%w: quedan %d", domain.ErrSinStock, p.Stock)
	}

	item := p.ToCartItem(color)
	return s.bus.AgregarAlCarrito.Publish(ctx, events.AgregarAlCarrito{
		ProductID: item.ID,
		Nombre:    item.Nombre,
		Precio:    item.Precio,
		Cantidad:  cantidad,
		Color:     item.Color,
		Imagen:    item.Imagen,
	})
}
