package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/catalog"
	"github.com/muebleria-iris/tienda/internal/application/dto"
)

// CatalogHandler catálogo público.
type CatalogHandler struct {
	svc *catalog.Service
}

// NewCatalogHandler crea el handler del catálogo.
func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         catalogo
// @Produce      json
// @Param        categoria  query  int     false  "ID de categoría"
// @Param        q          query  string  false  "Búsqueda"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ProductoListResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var f dto.ProductoFiltro
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	f.DefaultPage()
	items, err := h.svc.Productos(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductoListResponse{Items: items, Page: f.PageRequest})
}

// GetByID godoc
// @Summary      Detalle de producto
// @Tags         catalogo
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  entity.Producto
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	p, err := h.svc.Producto(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// AddToCart godoc
// @Summary      Agregar producto del catálogo al carrito
// @Description  Usa el precio vigente del catálogo y pasa por el evento agregar-al-carrito.
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        id    path  int     true  "ID del producto"
// @Param        body  body  object  true  "{\"color\": \"gris\", \"cantidad\": 1}"
// @Success      202   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/carrito [post]
func (h *CatalogHandler) AddToCart(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in struct {
		Color    string `json:"color"`
		Cantidad int    `json:"cantidad"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	if in.Cantidad == 0 {
		in.Cantidad = 1
	}
	ev, err := h.svc.AgregarAlCarrito(c.UserContext(), id, in.Color, in.Cantidad)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"event_id": ev.ID.String(), "tipo": ev.Tipo})
}

// Categorias godoc
// @Summary      Listar categorías
// @Tags         catalogo
// @Produce      json
// @Success      200  {array}  entity.Categoria
// @Router       /api/categorias [get]
func (h *CatalogHandler) Categorias(c *fiber.Ctx) error {
	out, err := h.svc.Categorias(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
