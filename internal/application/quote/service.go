// Package quote arma la cotización del carrito actual.
package quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muebleria-iris/tienda/internal/application/cart"
	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/application/ports"
	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// Validez plazo que se imprime en la cotización.
const Validez = 7 * 24 * time.Hour

// Session fuente opcional del cliente a nombre de quien se cotiza.
type Session interface {
	State() entity.AuthState
}

type Service struct {
	cart    *cart.Store
	session Session
	gen     ports.QuotePDFGenerator
	emisor  dto.Emisor
	now     func() time.Time
}

func NewService(c *cart.Store, session Session, gen ports.QuotePDFGenerator, emisor dto.Emisor) *Service {
	return &Service{cart: c, session: session, gen: gen, emisor: emisor, now: time.Now}
}

// Armar construye la cotización desde el carrito. Devuelve ErrCarritoVacio si no hay líneas.
func (s *Service) Armar() (dto.Quote, error) {
	snap := s.cart.Snapshot()
	if len(snap.Items) == 0 {
		return dto.Quote{}, domain.ErrCarritoVacio
	}
	q := dto.Quote{
		Numero:   strings.ToUpper(uuid.NewString()[:8]),
		Fecha:    s.now(),
		Validez:  Validez,
		Emisor:   s.emisor,
		Items:    snap.Items,
		Total:    snap.Total,
		Unidades: snap.Count,
	}
	if s.session != nil {
		q.Cliente = s.session.State().User
	}
	return q, nil
}

// PDF arma la cotización y la renderiza.
func (s *Service) PDF(ctx context.Context) ([]byte, dto.Quote, error) {
	q, err := s.Armar()
	if err != nil {
		return nil, q, err
	}
	out, err := s.gen.GenerateQuotePDF(ctx, q)
	if err != nil {
		return nil, q, fmt.Errorf("quote: generar pdf: %w", err)
	}
	return out, q, nil
}
