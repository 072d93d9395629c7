package storage

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/muebleria-iris/tienda/internal/domain/repository"
)

var _ repository.SlotRepository = (*SealedRepository)(nil)

// ErrSelloInvalido el valor guardado no se pudo abrir con la clave actual.
var ErrSelloInvalido = errors.New("storage: slot sellado inválido")

const nonceSize = 24

// SealedRepository cifra cada valor con secretbox antes de delegar en otro repositorio.
// Las claves de slot quedan en claro; solo el contenido (token, usuario, carrito) se sella.
// El valor sellado se guarda en base64 para que los backends de texto (archivo JSON) no lo alteren.
type SealedRepository struct {
	inner repository.SlotRepository
	key   [32]byte
}

// NewSealedRepository deriva la clave de 32 bytes desde secret con HKDF-SHA256.
func NewSealedRepository(inner repository.SlotRepository, secret string) (*SealedRepository, error) {
	if secret == "" {
		return nil, fmt.Errorf("storage: secreto de sellado vacío")
	}
	r := &SealedRepository{inner: inner}
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("muebleria-slots"))
	if _, err := io.ReadFull(kdf, r.key[:]); err != nil {
		return nil, fmt.Errorf("storage: derivar clave: %w", err)
	}
	return r, nil
}

func (r *SealedRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	encoded, found, err := r.inner.Load(ctx, key)
	if err != nil || !found {
		return nil, found, err
	}
	sealed, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, false, ErrSelloInvalido
	}
	if len(sealed) < nonceSize+secretbox.Overhead {
		return nil, false, ErrSelloInvalido
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &r.key)
	if !ok {
		return nil, false, ErrSelloInvalido
	}
	return plain, true, nil
}

func (r *SealedRepository) Save(ctx context.Context, key string, value []byte) error {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return fmt.Errorf("storage: generar nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], value, &nonce, &r.key)
	return r.inner.Save(ctx, key, []byte(base64.StdEncoding.EncodeToString(sealed)))
}

func (r *SealedRepository) Delete(ctx context.Context, key string) error {
	return r.inner.Delete(ctx, key)
}
