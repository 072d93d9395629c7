package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muebleria-iris/tienda/internal/domain"
)

// Event sobre que viaja por un Topic.
type Event[P any] struct {
	ID         uuid.UUID `json:"id"`
	Tipo       string    `json:"tipo"`
	OcurridoEn time.Time `json:"ocurrido_en"`
	Payload    P         `json:"payload"`
}

// Handler consume un evento de tipo P.
type Handler[P any] func(ctx context.Context, ev Event[P]) error

// Topic es un canal de difusión con payload fijo y exactamente un handler.
// Registrar un segundo handler falla; publicar sin handler también falla, así el
// contrato "un solo consumidor" se puede verificar en vez de depender del azar.
type Topic[P any] struct {
	name    string
	log     zerolog.Logger
	mu      sync.RWMutex
	handler Handler[P]
	owner   string
}

// NewTopic crea un tópico sin handler.
func NewTopic[P any](name string, log zerolog.Logger) *Topic[P] {
	return &Topic[P]{name: name, log: log.With().Str("topic", name).Logger()}
}

// Name nombre del tópico.
func (t *Topic[P]) Name() string { return t.name }

// Handle registra el único handler. owner identifica al dueño en logs y errores.
func (t *Topic[P]) Handle(owner string, h Handler[P]) (unregister func(), err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handler != nil {
		return nil, fmt.Errorf("%w: %s ya lo atiende %s", domain.ErrHandlerDuplicado, t.name, t.owner)
	}
	t.handler, t.owner = h, owner
	t.log.Debug().Str("owner", owner).Msg("handler registrado")

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			t.handler, t.owner = nil, ""
			t.mu.Unlock()
		})
	}, nil
}

// HasHandler indica si hay consumidor registrado.
func (t *Topic[P]) HasHandler() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.handler != nil
}

// Publish entrega el payload al handler de forma síncrona. Un panic del handler se
// recupera y se devuelve como error.
func (t *Topic[P]) Publish(ctx context.Context, payload P) (ev Event[P], err error) {
	t.mu.RLock()
	h := t.handler
	t.mu.RUnlock()

	ev = Event[P]{ID: uuid.New(), Tipo: t.name, OcurridoEn: time.Now(), Payload: payload}
	if h == nil {
		return ev, fmt.Errorf("%w: %s", domain.ErrSinHandler, t.name)
	}

	defer func() {
		if r := recover(); r != nil {
			t.log.Error().Str("event_id", ev.ID.String()).Interface("panic", r).Msg("handler entró en pánico")
			err = fmt.Errorf("events: handler de %s: %v", t.name, r)
		}
	}()

	if err = h(ctx, ev); err != nil {
		t.log.Warn().Err(err).Str("event_id", ev.ID.String()).Msg("handler devolvió error")
		return ev, err
	}
	return ev, nil
}
