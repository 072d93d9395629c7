package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/muebleria-iris/tienda/docs"
	"github.com/muebleria-iris/tienda/internal/bootstrap"
	httpRouter "github.com/muebleria-iris/tienda/internal/interfaces/http"
	"github.com/muebleria-iris/tienda/pkg/config"
	"github.com/muebleria-iris/tienda/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando tienda")

	ctx := context.Background()
	nav := httpRouter.NewNavigation()
	tienda, err := bootstrap.New(ctx, cfg, log, nav)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar tienda")
	}
	defer func() {
		if err := tienda.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar tienda")
		}
	}()

	// Verificación del token restaurado: una vez, sin bloquear el arranque del servidor.
	go tienda.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.Tienda.Nombre,
	}))
	app.Get("/docs/doc.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Cart:       tienda.Cart,
		Panel:      tienda.Panel,
		Auth:       tienda.Auth,
		Bus:        tienda.Bus,
		Navigation: nav,
		Catalog:    tienda.Catalog,
		Checkout:   tienda.Checkout,
		Quote:      tienda.Quote,
		Backoffice: tienda.Backoffice,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("tienda detenida")
}
