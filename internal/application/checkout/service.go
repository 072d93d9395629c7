// Package checkout convierte el carrito en un pedido de la API.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/muebleria-iris/tienda/internal/application/cart"
	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/application/ports"
	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// Session lo que checkout necesita de la sesión.
type Session interface {
	State() entity.AuthState
	Logout()
}

// Service confirma compras.
type Service struct {
	cart    *cart.Store
	session Session
	orders  ports.OrderAPI
	log     zerolog.Logger
}

// NewService construye el servicio.
func NewService(c *cart.Store, session Session, orders ports.OrderAPI, log zerolog.Logger) *Service {
	return &Service{cart: c, session: session, orders: orders, log: log}
}

// Confirmar envía el carrito como pedido y, si la API lo acepta, descuenta del carrito las
// líneas enviadas; lo agregado mientras el pedido viajaba se conserva.
// Un 401 de la API cierra la sesión local.
func (s *Service) Confirmar(ctx context.Context, in dto.CheckoutRequest) (*entity.Pedido, error) {
	if err := dto.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	st := s.session.State()
	if !st.IsAuthenticated() {
		return nil, domain.ErrSinSesion
	}
	snap := s.cart.Snapshot()
	if len(snap.Items) == 0 {
		return nil, domain.ErrCarritoVacio
	}

	req := dto.CrearPedidoRequest{
		ClienteID: st.User.ClienteID,
		Direccion: in.Direccion,
		Comuna:    in.Comuna,
		Telefono:  in.Telefono,
		Notas:     in.Notas,
		Items:     make([]dto.PedidoItem, 0, len(snap.Items)),
		Total:     snap.Total,
	}
	for _, it := range snap.Items {
		req.Items = append(req.Items, dto.PedidoItem{
			ProductoID:     it.ID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.Precio,
			Color:          it.Color,
		})
	}

	pedido, err := s.orders.CrearPedido(ctx, st.Token, req)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.log.Info().Msg("checkout: token rechazado, cerrando sesión")
			s.session.Logout()
		}
		return nil, fmt.Errorf("checkout: crear pedido: %w", err)
	}

	s.cart.Descontar(snap.Items)
	s.log.Info().
		Int("pedido_id", pedido.ID).
		Int("lineas", len(req.Items)).
		Str("total", snap.Total.String()).
		Msg("pedido confirmado")
	return pedido, nil
}
