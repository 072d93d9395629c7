package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/muebleria-iris/tienda/internal/application/store"
	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
	"github.com/muebleria-iris/tienda/internal/domain/repository"
)

// SlotCarrito slot donde se persiste el carrito (arreglo JSON de CartItem).
const SlotCarrito = "muebleria-cart"

// Snapshot estado del carrito con sus agregados, calculados sobre las mismas líneas.
type Snapshot struct {
	Items   []entity.CartItem `json:"items"`
	Count   int               `json:"count"`
	Total   decimal.Decimal   `json:"total"`
	Version uint64            `json:"version"`
}

// Store carrito de compras de la sesión. Las líneas conservan el orden de inserción y
// solo cambian a través de sus operaciones.
type Store struct {
	items *store.Persistent[[]entity.CartItem]
	log   zerolog.Logger
}

// NewStore carga el carrito desde el slot; un slot ausente o corrupto deja el carrito vacío.
func NewStore(ctx context.Context, repo repository.SlotRepository, log zerolog.Logger) *Store {
	log = log.With().Str("store", "cart").Logger()
	items := store.NewPersistent(ctx, repo, SlotCarrito, []entity.CartItem{}, itemsCodec(), log)
	return &Store{items: items, log: log}
}

// itemsCodec acepta solo arreglos JSON y descarta líneas que violen las invariantes.
func itemsCodec() store.Codec[[]entity.CartItem] {
	return store.Codec[[]entity.CartItem]{
		Parse: func(raw []byte) ([]entity.CartItem, error) {
			var in []entity.CartItem
			if err := json.Unmarshal(raw, &in); err != nil {
				return nil, fmt.Errorf("cart: slot inválido: %w", err)
			}
			out := make([]entity.CartItem, 0, len(in))
			for _, it := range in {
				if it.ID <= 0 || it.Cantidad < 1 || it.Cantidad > entity.MaxCantidad || !entity.PrecioValido(it.Precio) {
					continue
				}
				out = append(out, it)
			}
			return out, nil
		},
		Serialize: func(items []entity.CartItem) ([]byte, error) {
			if items == nil {
				items = []entity.CartItem{}
			}
			return json.Marshal(items)
		},
	}
}

// AddToCart suma cantidad a la línea (id, color) si existe o agrega una nueva al final.
// Si la línea superaría entity.MaxCantidad el carrito no cambia.
func (s *Store) AddToCart(item entity.CartItem, cantidad int) error {
	if cantidad <= 0 || cantidad > entity.MaxCantidad {
		return fmt.Errorf("%w: %d (máximo %d por línea)", domain.ErrCantidadInvalida, cantidad, entity.MaxCantidad)
	}
	if item.ID <= 0 || !entity.PrecioValido(item.Precio) {
		return fmt.Errorf("%w: producto %d precio %v", domain.ErrInvalidInput, item.ID, item.Precio)
	}
	_, ok := s.items.TryUpdate(func(cur []entity.CartItem) ([]entity.CartItem, bool) {
		next := clone(cur)
		for i := range next {
			if next[i].SameLine(item.ID, item.Color) {
				if next[i].Cantidad > entity.MaxCantidad-cantidad {
					return cur, false
				}
				next[i].Cantidad += cantidad
				return next, true
			}
		}
		item.Cantidad = cantidad
		return append(next, item), true
	})
	if !ok {
		return fmt.Errorf("%w: la línea superaría %d unidades", domain.ErrCantidadInvalida, entity.MaxCantidad)
	}
	s.log.Debug().Int("producto", item.ID).Str("color", item.Color).Int("cantidad", cantidad).Msg("agregado al carrito")
	return nil
}

// RemoveFromCart elimina la línea (id, color); no hace nada si no existe.
func (s *Store) RemoveFromCart(id int, color string) {
	if s.indexOf(id, color) < 0 {
		return
	}
	s.items.Update(func(cur []entity.CartItem) []entity.CartItem {
		next := make([]entity.CartItem, 0, len(cur))
		for _, it := range cur {
			if !it.SameLine(id, color) {
				next = append(next, it)
			}
		}
		return next
	})
}

// UpdateQuantity fija la cantidad de la línea (no suma). cantidad ≤ 0 equivale a RemoveFromCart
// y una cantidad sobre entity.MaxCantidad queda en el máximo.
func (s *Store) UpdateQuantity(id, cantidad int, color string) {
	if cantidad <= 0 {
		s.RemoveFromCart(id, color)
		return
	}
	cantidad = min(cantidad, entity.MaxCantidad)
	if s.indexOf(id, color) < 0 {
		return
	}
	s.items.Update(func(cur []entity.CartItem) []entity.CartItem {
		next := clone(cur)
		for i := range next {
			if next[i].SameLine(id, color) {
				next[i].Cantidad = cantidad
			}
		}
		return next
	})
}

// ClearCart vacía el carrito.
func (s *Store) ClearCart() {
	s.items.Set([]entity.CartItem{})
}

// Descontar resta del carrito las unidades de lines (por ejemplo, las de un pedido ya
// confirmado). Las líneas que quedan en cero se eliminan; lo agregado después se conserva.
func (s *Store) Descontar(lines []entity.CartItem) {
	if len(lines) == 0 {
		return
	}
	s.items.Update(func(cur []entity.CartItem) []entity.CartItem {
		next := make([]entity.CartItem, 0, len(cur))
		for _, it := range cur {
			for _, l := range lines {
				if it.SameLine(l.ID, l.Color) {
					it.Cantidad -= l.Cantidad
				}
			}
			if it.Cantidad > 0 {
				next = append(next, it)
			}
		}
		return next
	})
}

// Items copia de las líneas actuales.
func (s *Store) Items() []entity.CartItem {
	return clone(s.items.Get())
}

// Count suma de cantidades.
func (s *Store) Count() int {
	return count(s.items.Get())
}

// Total suma de precio × cantidad.
func (s *Store) Total() decimal.Decimal {
	return total(s.items.Get())
}

// Snapshot líneas, agregados y versión leídos de un mismo estado.
func (s *Store) Snapshot() Snapshot {
	items, version := s.items.Snapshot()
	return snapshotOf(items, version)
}

// Subscribe avisa con el snapshot actual y después de cada mutación.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	return s.items.Subscribe(func(items []entity.CartItem) {
		fn(snapshotOf(items, s.items.Version()))
	})
}

// Flush espera a que el slot refleje el último cambio.
func (s *Store) Flush() { s.items.Flush() }

// Close escribe lo pendiente y libera la escritora.
func (s *Store) Close() { s.items.Close() }

func (s *Store) indexOf(id int, color string) int {
	for i, it := range s.items.Get() {
		if it.SameLine(id, color) {
			return i
		}
	}
	return -1
}

func snapshotOf(items []entity.CartItem, version uint64) Snapshot {
	return Snapshot{Items: clone(items), Count: count(items), Total: total(items), Version: version}
}

func clone(items []entity.CartItem) []entity.CartItem {
	out := make([]entity.CartItem, len(items))
	copy(out, items)
	return out
}

func count(items []entity.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Cantidad
	}
	return n
}

func total(items []entity.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}
