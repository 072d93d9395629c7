package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrCantidadInvalida    = errors.New("cantidad inválida")
	ErrCarritoVacio        = errors.New("el carrito está vacío")
	ErrSinSesion           = errors.New("no hay sesión iniciada")
	ErrStorageNoDisponible = errors.New("almacenamiento no disponible")
	ErrSlotNoEncontrado    = errors.New("slot no encontrado")
	ErrHandlerDuplicado    = errors.New("ya existe un handler para este evento")
	ErrSinHandler          = errors.New("no hay handler registrado para este evento")
	ErrSinStock            = errors.New("stock insuficiente")
	ErrProductoInactivo    = errors.New("producto no disponible")
)
