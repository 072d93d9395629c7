package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/domain"
)

// Error respuesta no 2xx de la API. Mensaje y Detalle vienen de los campos error/detalle
// del cuerpo; quedan vacíos si el cuerpo no tiene esa forma.
type Error struct {
	Status  int
	Mensaje string
	Detalle string
}

func newError(status int, raw []byte) *Error {
	e := &Error{Status: status}
	var body dto.APIErrorBody
	if json.Unmarshal(raw, &body) == nil {
		e.Mensaje = body.Error
		e.Detalle = body.Detalle
	}
	return e
}

func (e *Error) Error() string {
	if e.Mensaje == "" {
		return fmt.Sprintf("api: HTTP %d", e.Status)
	}
	return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message())
}

// Message texto para mostrar al usuario, o "" si la API no envió uno reconocible.
func (e *Error) Message() string {
	if e.Mensaje == "" {
		return ""
	}
	if e.Detalle != "" {
		return e.Mensaje + ": " + e.Detalle
	}
	return e.Mensaje
}

// Unwrap mapea el status a los errores de dominio para usar errors.Is.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	}
	return nil
}

// UserMessage extrae el mensaje legible de err, o fallback si no es un *Error con cuerpo reconocible.
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if msg := apiErr.Message(); msg != "" {
			return msg
		}
	}
	return fallback
}
