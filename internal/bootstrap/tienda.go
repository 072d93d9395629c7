// Package bootstrap arma los singletons de la tienda para un proceso: storage de slots,
// cliente de la API, bus de eventos, stores y servicios.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/muebleria-iris/tienda/internal/application/auth"
	"github.com/muebleria-iris/tienda/internal/application/backoffice"
	"github.com/muebleria-iris/tienda/internal/application/cart"
	"github.com/muebleria-iris/tienda/internal/application/catalog"
	"github.com/muebleria-iris/tienda/internal/application/checkout"
	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/application/events"
	"github.com/muebleria-iris/tienda/internal/application/quote"
	"github.com/muebleria-iris/tienda/internal/domain/repository"
	"github.com/muebleria-iris/tienda/internal/infrastructure/api"
	"github.com/muebleria-iris/tienda/internal/infrastructure/pdf"
	"github.com/muebleria-iris/tienda/internal/infrastructure/storage"
	"github.com/muebleria-iris/tienda/pkg/config"
	"github.com/muebleria-iris/tienda/pkg/logger"
)

// Tienda contenedor de los singletons del proceso.
type Tienda struct {
	Config *config.Config
	Log    *logger.Logger

	Repo   repository.SlotRepository
	Client *api.Client
	Bus    *events.Bus

	Cart  *cart.Store
	Panel *cart.Panel
	Auth  *auth.Store

	Catalog    *catalog.Service
	Checkout   *checkout.Service
	Quote      *quote.Service
	Backoffice *backoffice.Service

	watcher   *auth.Watcher
	detach    func()
	closeRepo func() error
}

// New abre el storage y construye stores y servicios. nav recibe las navegaciones de logout.
// No hace llamadas de red: la verificación del token restaurado ocurre en Start.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, nav auth.Navigator) (*Tienda, error) {
	repo, closeRepo, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		// Sin storage la tienda sigue funcionando en memoria.
		log.Warn().Err(err).Str("driver", cfg.Storage.Driver).Msg("storage no disponible, slots solo en memoria")
		repo, closeRepo = nil, func() error { return nil }
	}

	t := &Tienda{
		Config:    cfg,
		Log:       log,
		Repo:      repo,
		Client:    api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log.Component("api")),
		Bus:       events.NewBus(log.Component("events")),
		Panel:     cart.NewPanel(),
		closeRepo: closeRepo,
	}
	t.Cart = cart.NewStore(ctx, repo, log.Component("cart"))
	t.Auth = auth.NewStore(ctx, t.Client, repo, nav, log.Component("auth"))

	t.detach, err = cart.AttachListener(t.Bus, t.Cart, t.Panel)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("bootstrap: registrar listener del carrito: %w", err)
	}

	if cfg.Session.CheckInterval > 0 {
		t.watcher, err = auth.NewWatcher(t.Auth, cfg.Session.CheckInterval, log.Component("session"))
		if err != nil {
			t.Close()
			return nil, err
		}
	}

	t.Catalog = catalog.NewService(t.Client, t.Bus, log.Component("catalog"))
	t.Checkout = checkout.NewService(t.Cart, t.Auth, t.Client, log.Component("checkout"))
	t.Quote = quote.NewService(t.Cart, t.Auth, pdf.NewQuoteGenerator(), dto.Emisor{
		Nombre:    cfg.Tienda.Nombre,
		Direccion: cfg.Tienda.Direccion,
		Telefono:  cfg.Tienda.Telefono,
	})
	t.Backoffice = backoffice.NewService(t.Client, t.Auth, log.Component("backoffice"))
	return t, nil
}

// Start verifica el token restaurado (una sola vez) y arranca el vigilante de sesión.
func (t *Tienda) Start(ctx context.Context) {
	t.Auth.Start(ctx)
	if t.watcher != nil {
		t.watcher.Start()
	}
}

// Close detiene el vigilante, vacía las escrituras pendientes y libera el storage.
func (t *Tienda) Close() error {
	if t.watcher != nil {
		t.watcher.Stop()
	}
	if t.detach != nil {
		t.detach()
	}
	if t.Cart != nil {
		t.Cart.Close()
	}
	if t.Auth != nil {
		t.Auth.Close()
	}
	var errs []error
	if t.closeRepo != nil {
		if err := t.closeRepo(); err != nil {
			errs = append(errs, fmt.Errorf("bootstrap: cerrar storage: %w", err))
		}
	}
	return errors.Join(errs...)
}
