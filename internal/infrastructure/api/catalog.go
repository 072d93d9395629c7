package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// ListProductos GET /productos con filtros opcionales.
func (c *Client) ListProductos(ctx context.Context, filtro dto.ProductoFiltro) ([]entity.Producto, error) {
	q := url.Values{}
	if filtro.CategoriaID > 0 {
		q.Set("categoria_id", strconv.Itoa(filtro.CategoriaID))
	}
	if filtro.Busqueda != "" {
		q.Set("q", filtro.Busqueda)
	}
	if filtro.Limit > 0 {
		q.Set("limit", strconv.Itoa(filtro.Limit))
	}
	if filtro.Offset > 0 {
		q.Set("offset", strconv.Itoa(filtro.Offset))
	}
	path := "/productos"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []entity.Producto
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProducto GET /productos/:id.
func (c *Client) GetProducto(ctx context.Context, id int) (*entity.Producto, error) {
	var out entity.Producto
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/productos/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCategorias GET /categorias.
func (c *Client) ListCategorias(ctx context.Context) ([]entity.Categoria, error) {
	var out []entity.Categoria
	if err := c.do(ctx, http.MethodGet, "/categorias", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
