package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/muebleria-iris/tienda/internal/domain/repository"
)

var _ repository.SlotRepository = (*FileRepository)(nil)

// FileRepository persiste todos los slots en un único archivo JSON {clave: valor},
// igual que el localStorage de un origen. Cada escritura reescribe el archivo completo
// vía archivo temporal + rename para no dejarlo a medias.
type FileRepository struct {
	path  string
	mu    sync.RWMutex
	slots map[string]string
}

// NewFileRepository abre (o crea al primer Save) el archivo de slots.
// Un archivo corrupto se reporta como error: el llamador decide si arrancar vacío.
func NewFileRepository(path string) (*FileRepository, error) {
	r := &FileRepository{path: path, slots: map[string]string{}}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepository) load() error {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage: leer %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &r.slots); err != nil {
		return fmt.Errorf("storage: parsear %s: %w", r.path, err)
	}
	if r.slots == nil {
		r.slots = map[string]string{}
	}
	return nil
}

// flush debe llamarse con el lock tomado.
func (r *FileRepository) flush() error {
	data, err := json.MarshalIndent(r.slots, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: serializar slots: %w", err)
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".slots-*")
	if err != nil {
		return fmt.Errorf("storage: crear temporal: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: reemplazar %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepository) Load(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.slots[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (r *FileRepository) Save(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = string(value)
	return r.flush()
}

func (r *FileRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slots[key]; !ok {
		return nil
	}
	delete(r.slots, key)
	return r.flush()
}

// Path ruta del archivo de slots.
func (r *FileRepository) Path() string { return r.path }

// quarantine renombra un archivo de slots ilegible a <path>.corrupt.
func quarantine(path string) error {
	if err := os.Rename(path, path+".corrupt"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
