package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/backoffice"
	"github.com/muebleria-iris/tienda/internal/infrastructure/api"
)

// AdminHandler CRUD de backoffice sobre /api/admin/:recurso.
type AdminHandler struct {
	svc *backoffice.Service
}

// NewAdminHandler crea el handler del backoffice.
func NewAdminHandler(svc *backoffice.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Recursos godoc
// @Summary      Recursos visibles para el rol de la sesión
// @Tags         admin
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/admin [get]
func (h *AdminHandler) Recursos(c *fiber.Ctx) error {
	return c.JSON(h.svc.Visibles())
}

// List godoc
// @Summary      Listar registros
// @Tags         admin
// @Produce      json
// @Param        recurso  path  string  true  "clientes, pedidos, inventario, ..."
// @Success      200  {array}   object
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/{recurso} [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	q := url.Values{}
	for k, v := range c.Queries() {
		q.Set(k, v)
	}
	out, err := h.svc.Listar(c.UserContext(), c.Params("recurso"), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro
// @Tags         admin
// @Produce      json
// @Param        recurso  path  string  true  "Recurso"
// @Param        id       path  int     true  "ID"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/{recurso}/{id} [get]
func (h *AdminHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.svc.Obtener(c.UserContext(), c.Params("recurso"), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        recurso  path  string  true  "Recurso"
// @Param        body     body  object  true  "Registro"
// @Success      201  {object}  object
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/{recurso} [post]
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	var in api.Registro
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Crear(c.UserContext(), c.Params("recurso"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar registro
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        recurso  path  string  true  "Recurso"
// @Param        id       path  int     true  "ID"
// @Param        body     body  object  true  "Campos"
// @Success      200  {object}  object
// @Router       /api/admin/{recurso}/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in api.Registro
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Actualizar(c.UserContext(), c.Params("recurso"), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro
// @Tags         admin
// @Param        recurso  path  string  true  "Recurso"
// @Param        id       path  int     true  "ID"
// @Success      204
// @Router       /api/admin/{recurso}/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.svc.Eliminar(c.UserContext(), c.Params("recurso"), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
