package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/muebleria-iris/tienda/internal/domain/repository"
)

// writeTimeout límite por escritura de slot; la mutación en memoria nunca lo espera.
const writeTimeout = 5 * time.Second

// Persistent es una Cell enlazada a un slot de almacenamiento.
//
// Al construirse lee el slot: si falta, está corrupto o el storage falla, arranca con el
// valor por defecto y solo registra un warning. Cada cambio posterior se encola para una
// goroutine escritora que guarda siempre el valor más reciente; las escrituras intermedias
// se pueden coalescer.
type Persistent[T any] struct {
	*Cell[T]

	repo  repository.SlotRepository
	key   string
	codec Codec[T]
	log   zerolog.Logger

	mu         sync.Mutex
	cond       *sync.Cond
	pending    T
	hasPending bool
	queued     uint64
	written    uint64
	closed     bool
	done       chan struct{}
	unwatch    func()
}

// NewPersistent siembra la celda desde el slot key (o def) y arranca la escritora.
// repo puede ser nil: la celda funciona solo en memoria (storage no disponible).
func NewPersistent[T any](ctx context.Context, repo repository.SlotRepository, key string, def T, codec Codec[T], log zerolog.Logger) *Persistent[T] {
	p := &Persistent[T]{
		repo:  repo,
		key:   key,
		codec: codec,
		log:   log.With().Str("slot", key).Logger(),
		done:  make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	p.Cell = NewCell(p.load(ctx, def))
	p.unwatch = p.Cell.Watch(p.enqueue)
	go p.writer()
	return p
}

func (p *Persistent[T]) load(ctx context.Context, def T) T {
	if p.repo == nil {
		return def
	}
	raw, found, err := p.repo.Load(ctx, p.key)
	if err != nil {
		p.log.Warn().Err(err).Msg("slot no disponible, se usa valor por defecto")
		return def
	}
	if !found {
		return def
	}
	v, err := p.codec.Parse(raw)
	if err != nil {
		p.log.Warn().Err(err).Msg("slot corrupto, se usa valor por defecto")
		return def
	}
	return v
}

func (p *Persistent[T]) enqueue(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.repo == nil {
		return
	}
	p.pending = v
	p.hasPending = true
	p.queued++
	p.cond.Broadcast()
}

func (p *Persistent[T]) writer() {
	defer close(p.done)
	for {
		p.mu.Lock()
		for !p.hasPending && !p.closed {
			p.cond.Wait()
		}
		if !p.hasPending && p.closed {
			p.mu.Unlock()
			return
		}
		v, seq := p.pending, p.queued
		var zero T
		p.pending, p.hasPending = zero, false
		p.mu.Unlock()

		p.write(v)

		p.mu.Lock()
		p.written = seq
		p.cond.Broadcast()
		p.mu.Unlock()
	}
}

func (p *Persistent[T]) write(v T) {
	raw, err := p.codec.Serialize(v)
	if err != nil {
		p.log.Warn().Err(err).Msg("no se pudo serializar el slot")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if raw == nil {
		err = p.repo.Delete(ctx, p.key)
	} else {
		err = p.repo.Save(ctx, p.key, raw)
	}
	if err != nil {
		p.log.Warn().Err(err).Msg("escritura de slot fallida; memoria sigue siendo la fuente")
	}
}

// Flush bloquea hasta que todo cambio encolado antes de la llamada esté escrito (o haya
// fallado). Útil al cerrar el proceso y en tests.
func (p *Persistent[T]) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()
	target := p.queued
	for p.written < target {
		p.cond.Wait()
	}
}

// Close escribe lo pendiente y detiene la escritora. Los cambios posteriores quedan solo en memoria.
func (p *Persistent[T]) Close() {
	p.unwatch()
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
	<-p.done
}

// Key nombre del slot.
func (p *Persistent[T]) Key() string { return p.key }
