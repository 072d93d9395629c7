package http

import (
	"github.com/muebleria-iris/tienda/internal/application/store"
)

// Navigation implementa auth.Navigator para las islas que hacen polling: guarda el
// último destino pedido y lo publica en /api/estado con su versión.
type Navigation struct {
	cell *store.Cell[string]
}

// NewNavigation crea la navegación sin destino pendiente.
func NewNavigation() *Navigation {
	return &Navigation{cell: store.NewCell("")}
}

// Navigate registra el destino.
func (n *Navigation) Navigate(path string) { n.cell.Set(path) }

// Last destino y versión; versión 0 indica que nunca se navegó.
func (n *Navigation) Last() (string, uint64) { return n.cell.Snapshot() }
