package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/infrastructure/api"
)

// writeError traduce errores de dominio y de la API a la respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrCantidadInvalida), errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrCarritoVacio):
		status, code = fiber.StatusConflict, "EMPTY_CART"
	case errors.Is(err, domain.ErrSinStock):
		status, code = fiber.StatusConflict, "OUT_OF_STOCK"
	case errors.Is(err, domain.ErrProductoInactivo):
		status, code = fiber.StatusConflict, "UNAVAILABLE"
	case errors.Is(err, domain.ErrSinSesion), errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrSinHandler):
		status, code = fiber.StatusServiceUnavailable, "NO_LISTENER"
	default:
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			status, code = fiber.StatusBadGateway, "UPSTREAM"
		}
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: api.UserMessage(err, err.Error())})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
