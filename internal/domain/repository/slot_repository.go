package repository

import "context"

// SlotRepository define el puerto de persistencia clave-valor donde viven los stores
// (equivalente al localStorage del navegador). Los valores son opacos para el repositorio.
type SlotRepository interface {
	// Load devuelve el valor del slot; found=false si no existe.
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	// Save crea o reemplaza el slot.
	Save(ctx context.Context, key string, value []byte) error
	// Delete elimina el slot; no es error si no existía.
	Delete(ctx context.Context, key string) error
}
