package api

import (
	"context"
	"net/http"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// CrearPedido POST /pedidos con el token del usuario.
func (c *Client) CrearPedido(ctx context.Context, token string, req dto.CrearPedidoRequest) (*entity.Pedido, error) {
	var out entity.Pedido
	if err := c.do(ctx, http.MethodPost, "/pedidos", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
