package ports

import (
	"context"

	"github.com/muebleria-iris/tienda/internal/application/dto"
)

// QuotePDFGenerator renderiza una cotización como PDF.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, q dto.Quote) ([]byte, error)
}
