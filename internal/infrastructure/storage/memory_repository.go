package storage

import (
	"context"
	"sync"

	"github.com/muebleria-iris/tienda/internal/domain/repository"
)

var _ repository.SlotRepository = (*MemoryRepository)(nil)

// MemoryRepository guarda los slots en memoria del proceso. Sirve para tests y para
// sesiones efímeras (STORAGE_DRIVER=memory), equivalente a un navegador sin localStorage.
type MemoryRepository struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryRepository construye un repositorio vacío.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{slots: map[string][]byte{}}
}

func (r *MemoryRepository) Load(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (r *MemoryRepository) Save(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	r.slots[key] = append([]byte(nil), value...)
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	delete(r.slots, key)
	r.mu.Unlock()
	return nil
}

// Keys lista los slots presentes (orden no garantizado).
func (r *MemoryRepository) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.slots))
	for k := range r.slots {
		keys = append(keys, k)
	}
	return keys
}
