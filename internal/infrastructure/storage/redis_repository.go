package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/muebleria-iris/tienda/internal/domain/repository"
)

var _ repository.SlotRepository = (*RedisRepository)(nil)

// RedisRepository guarda cada slot como una clave Redis bajo un prefijo por sesión/kiosco.
type RedisRepository struct {
	client    *redis.Client
	keyPrefix string
}

// RedisOptions conexión al servidor Redis.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// NewRedisRepository conecta y verifica con PING.
func NewRedisRepository(ctx context.Context, opts RedisOptions) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: conectar a Redis: %w", err)
	}
	return NewRedisRepositoryWithClient(client, opts.KeyPrefix), nil
}

// NewRedisRepositoryWithClient reutiliza un cliente existente.
func NewRedisRepositoryWithClient(client *redis.Client, keyPrefix string) *RedisRepository {
	if keyPrefix == "" {
		keyPrefix = "tienda:"
	}
	return &RedisRepository{client: client, keyPrefix: keyPrefix}
}

func (r *RedisRepository) key(k string) string { return r.keyPrefix + k }

func (r *RedisRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: redis GET %s: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisRepository) Save(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis SET %s: %w", key, err)
	}
	return nil
}

func (r *RedisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("storage: redis DEL %s: %w", key, err)
	}
	return nil
}

// Close cierra el cliente Redis.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}
