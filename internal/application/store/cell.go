// Package store implementa celdas reactivas: un valor compartido que solo cambia a través
// de Set/Update y que avisa a sus suscriptores de forma síncrona tras cada cambio.
//
// Persistent añade a la celda un slot de almacenamiento: se siembra desde el slot al
// construirse y cada cambio se guarda en segundo plano sin retrasar a los suscriptores.
package store

import "sync"

// Cell es un valor reactivo. Los valores entregados a suscriptores deben tratarse como
// inmutables: quien muta construye un valor nuevo (copy-on-write).
//
// Un suscriptor no debe mutar la misma celda dentro de su callback.
type Cell[T any] struct {
	emitMu sync.Mutex // serializa mutación + notificación para conservar el orden
	mu     sync.RWMutex
	value  T

	version uint64
	nextID  uint64
	subs    map[uint64]func(T)
	order   []uint64
}

// NewCell crea una celda con el valor inicial dado.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, subs: map[uint64]func(T){}}
}

// Get devuelve el valor actual.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Version cuenta las mutaciones aplicadas desde la construcción.
func (c *Cell[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Snapshot devuelve valor y versión leídos juntos.
func (c *Cell[T]) Snapshot() (T, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.version
}

// Set reemplaza el valor y notifica.
func (c *Cell[T]) Set(v T) {
	c.Update(func(T) T { return v })
}

// Update aplica fn sobre el valor actual, guarda el resultado y notifica a todos los
// suscriptores antes de retornar.
func (c *Cell[T]) Update(fn func(T) T) T {
	next, _ := c.TryUpdate(func(v T) (T, bool) { return fn(v), true })
	return next
}

// TryUpdate como Update, pero si fn devuelve ok=false la celda queda intacta, sin cambio
// de versión ni notificación. Devuelve el valor vigente al terminar.
func (c *Cell[T]) TryUpdate(fn func(T) (T, bool)) (T, bool) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	c.mu.Lock()
	next, ok := fn(c.value)
	if !ok {
		cur := c.value
		c.mu.Unlock()
		return cur, false
	}
	c.value = next
	c.version++
	subs := c.subscribersLocked()
	c.mu.Unlock()

	for _, s := range subs {
		s(next)
	}
	return next, true
}

// Subscribe llama a fn con el valor actual y luego con cada cambio. Devuelve la función
// para cancelar la suscripción.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	fn(c.Get())
	return c.watchLocked(fn)
}

// Watch como Subscribe pero sin la llamada inicial.
func (c *Cell[T]) Watch(fn func(T)) (unsubscribe func()) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	return c.watchLocked(fn)
}

func (c *Cell[T]) watchLocked(fn func(T)) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs[id] = fn
	c.order = append(c.order, id)
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			for i, o := range c.order {
				if o == id {
					c.order = append(c.order[:i:i], c.order[i+1:]...)
					break
				}
			}
			c.mu.Unlock()
		})
	}
}

// subscribersLocked en orden de suscripción; requiere c.mu tomado.
func (c *Cell[T]) subscribersLocked() []func(T) {
	out := make([]func(T), 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.subs[id])
	}
	return out
}

// Subscribers número de suscriptores activos.
func (c *Cell[T]) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}
