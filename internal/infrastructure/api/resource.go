package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Registro fila genérica de los recursos de backoffice cuyo esquema no modela la tienda.
type Registro = map[string]any

// Resource CRUD REST sobre una colección de la API (/productos, /clientes, ...).
// Todas las operaciones requieren token.
type Resource[T any] struct {
	c    *Client
	path string
}

// NewResource enlaza la colección path (por ejemplo "/clientes").
func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// Path ruta de la colección.
func (r *Resource[T]) Path() string { return r.path }

func (r *Resource[T]) List(ctx context.Context, token string, query url.Values) ([]T, error) {
	path := r.path
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var out []T
	if err := r.c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Get(ctx context.Context, token string, id int) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.itemPath(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Create(ctx context.Context, token string, in T) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Update(ctx context.Context, token string, id int, in T) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.itemPath(id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, token string, id int) error {
	return r.c.do(ctx, http.MethodDelete, r.itemPath(id), token, nil, nil)
}

func (r *Resource[T]) itemPath(id int) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}
