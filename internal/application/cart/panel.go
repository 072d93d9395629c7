package cart

import "github.com/muebleria-iris/tienda/internal/application/store"

// Panel estado abierto/cerrado del panel lateral del carrito (no se persiste).
type Panel struct {
	cell *store.Cell[bool]
}

// NewPanel panel cerrado.
func NewPanel() *Panel {
	return &Panel{cell: store.NewCell(false)}
}

// Open abre el panel.
func (p *Panel) Open() { p.cell.Set(true) }

// Close cierra el panel.
func (p *Panel) Close() { p.cell.Set(false) }

// Toggle invierte el estado del panel.
func (p *Panel) Toggle() { p.cell.Update(func(v bool) bool { return !v }) }

// IsOpen indica si el panel está abierto.
func (p *Panel) IsOpen() bool { return p.cell.Get() }

// Subscribe avisa cada vez que el panel se abre o cierra.
func (p *Panel) Subscribe(fn func(open bool)) (unsubscribe func()) {
	return p.cell.Subscribe(fn)
}
