package auth

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Watcher ejecuta CheckAuth periódicamente para que un token vencido cierre la sesión
// aunque nadie lo consulte.
type Watcher struct {
	store    *Store
	cron     *cron.Cron
	interval time.Duration
	log      zerolog.Logger
}

// NewWatcher programa CheckAuth cada interval (mínimo un segundo).
func NewWatcher(s *Store, interval time.Duration, log zerolog.Logger) (*Watcher, error) {
	if interval < time.Second {
		return nil, fmt.Errorf("auth: intervalo de verificación inválido: %s", interval)
	}
	w := &Watcher{
		store:    s,
		cron:     cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		interval: interval,
		log:      log,
	}
	if _, err := w.cron.AddFunc("@every "+interval.String(), w.tick); err != nil {
		return nil, fmt.Errorf("auth: programar verificación: %w", err)
	}
	return w, nil
}

func (w *Watcher) tick() {
	if w.store.Token() == "" {
		return
	}
	if !w.store.CheckAuth() {
		w.log.Debug().Msg("verificación periódica: sesión no vigente")
	}
}

// Start arranca el scheduler en segundo plano.
func (w *Watcher) Start() {
	w.cron.Start()
	w.log.Info().Dur("interval", w.interval).Msg("verificación periódica de sesión iniciada")
}

// Stop detiene el scheduler y espera a que termine la ejecución en curso.
func (w *Watcher) Stop() {
	<-w.cron.Stop().Done()
}
