package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/auth"
	"github.com/muebleria-iris/tienda/internal/application/backoffice"
	"github.com/muebleria-iris/tienda/internal/application/cart"
	"github.com/muebleria-iris/tienda/internal/application/catalog"
	"github.com/muebleria-iris/tienda/internal/application/checkout"
	"github.com/muebleria-iris/tienda/internal/application/events"
	"github.com/muebleria-iris/tienda/internal/application/quote"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// RouterDeps dependencias para el router. Todos los stores son los singletons del proceso.
type RouterDeps struct {
	Cart       *cart.Store
	Panel      *cart.Panel
	Auth       *auth.Store
	Bus        *events.Bus
	Navigation *Navigation
	Catalog    *catalog.Service
	Checkout   *checkout.Service
	Quote      *quote.Service
	Backoffice *backoffice.Service
}

// Router registra las rutas de la tienda.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	cartHandler := NewCartHandler(deps.Cart, deps.Panel, deps.Quote)
	stateHandler := NewStateHandler(cartHandler, deps.Auth, deps.Navigation)
	api.Get("/estado", stateHandler.Get)

	// Carrito
	carrito := api.Group("/carrito")
	carrito.Get("/", cartHandler.Get)
	carrito.Delete("/", cartHandler.Clear)
	carrito.Post("/items", cartHandler.Add)
	carrito.Put("/items/:id", cartHandler.UpdateQuantity)
	carrito.Delete("/items/:id", cartHandler.Remove)
	carrito.Put("/panel", cartHandler.SetPanel)
	carrito.Get("/cotizacion.pdf", cartHandler.Quote)

	// Eventos de página
	eventHandler := NewEventHandler(deps.Bus)
	api.Post("/eventos/agregar-al-carrito", eventHandler.AgregarAlCarrito)

	// Sesión
	sesion := api.Group("/sesion")
	sessionHandler := NewSessionHandler(deps.Auth)
	sesion.Get("/", sessionHandler.Get)
	sesion.Post("/login", sessionHandler.Login)
	sesion.Post("/register", sessionHandler.Register)
	sesion.Post("/logout", sessionHandler.Logout)
	sesion.Post("/verificar", sessionHandler.Verify)
	sesion.Post("/check", sessionHandler.Check)

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	api.Get("/productos", catalogHandler.List)
	api.Get("/productos/:id", catalogHandler.GetByID)
	api.Post("/productos/:id/carrito", catalogHandler.AddToCart)
	api.Get("/categorias", catalogHandler.Categorias)

	// Pedidos (requiere sesión)
	orderHandler := NewOrderHandler(deps.Checkout)
	api.Post("/pedidos", RequireSession(deps.Auth), orderHandler.Create)

	// Backoffice: admin y vendedor; el permiso por recurso lo decide backoffice.Service.
	admin := api.Group("/admin", RequireSession(deps.Auth), RequireRole(entity.RolAdmin, entity.RolVendedor))
	adminHandler := NewAdminHandler(deps.Backoffice)
	admin.Get("/", adminHandler.Recursos)
	admin.Get("/:recurso", adminHandler.List)
	admin.Post("/:recurso", adminHandler.Create)
	admin.Get("/:recurso/:id", adminHandler.GetByID)
	admin.Put("/:recurso/:id", adminHandler.Update)
	admin.Delete("/:recurso/:id", adminHandler.Delete)
}
