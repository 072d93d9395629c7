package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/muebleria-iris/tienda/internal/domain/repository"
)

var _ repository.SlotRepository = (*PostgresRepository)(nil)

const slotsDDL = `CREATE TABLE IF NOT EXISTS tienda_slots (
	prefix     TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      BYTEA       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (prefix, key)
)`

// PostgresRepository guarda los slots en la tabla tienda_slots, separados por prefijo de sesión.
type PostgresRepository struct {
	pool   *pgxpool.Pool
	prefix string
}

// NewPostgresRepository crea la tabla si no existe.
func NewPostgresRepository(ctx context.Context, pool *pgxpool.Pool, prefix string) (*PostgresRepository, error) {
	if _, err := pool.Exec(ctx, slotsDDL); err != nil {
		return nil, fmt.Errorf("storage: crear tabla tienda_slots: %w", err)
	}
	return &PostgresRepository{pool: pool, prefix: prefix}, nil
}

func (r *PostgresRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM tienda_slots WHERE prefix = $1 AND key = $2`,
		r.prefix, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: leer slot %s: %w", key, err)
	}
	return value, true, nil
}

func (r *PostgresRepository) Save(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tienda_slots (prefix, key, value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (prefix, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		r.prefix, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: guardar slot %s: %w", key, err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.pool.Exec(ctx,
		`DELETE FROM tienda_slots WHERE prefix = $1 AND key = $2`, r.prefix, key,
	); err != nil {
		return fmt.Errorf("storage: borrar slot %s: %w", key, err)
	}
	return nil
}
