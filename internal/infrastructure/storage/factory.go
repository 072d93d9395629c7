package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/muebleria-iris/tienda/internal/domain/repository"
	"github.com/muebleria-iris/tienda/pkg/config"
)

// Open construye el repositorio de slots según STORAGE_DRIVER y, si hay STORAGE_SECRET,
// lo envuelve en SealedRepository. closeFn libera conexiones (no-op para file y memory).
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repo repository.SlotRepository, closeFn func() error, err error) {
	closeFn = func() error { return nil }

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		repo = NewMemoryRepository()
	case config.StorageFile:
		fileRepo, ferr := NewFileRepository(cfg.Storage.Path)
		if ferr != nil {
			// Un archivo corrupto equivale a storage vacío; se aparta para no perderlo.
			log.Warn().Err(ferr).Str("path", cfg.Storage.Path).Msg("archivo de slots ilegible, se inicia vacío")
			if rerr := quarantine(cfg.Storage.Path); rerr != nil {
				return nil, closeFn, fmt.Errorf("storage: apartar archivo corrupto: %w", rerr)
			}
			fileRepo, ferr = NewFileRepository(cfg.Storage.Path)
			if ferr != nil {
				return nil, closeFn, ferr
			}
		}
		repo = fileRepo
	case config.StorageRedis:
		redisRepo, rerr := NewRedisRepository(ctx, RedisOptions{
			Addr:      cfg.Redis.Addr(),
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Storage.KeyPrefix,
		})
		if rerr != nil {
			return nil, closeFn, rerr
		}
		repo, closeFn = redisRepo, redisRepo.Close
	case config.StoragePostgres:
		pool, perr := NewPostgresPool(ctx, cfg.DB)
		if perr != nil {
			return nil, closeFn, perr
		}
		pgRepo, perr := NewPostgresRepository(ctx, pool, cfg.Storage.KeyPrefix)
		if perr != nil {
			pool.Close()
			return nil, closeFn, perr
		}
		repo = pgRepo
		closeFn = func() error { pool.Close(); return nil }
	default:
		return nil, closeFn, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}

	if cfg.Storage.Secret != "" {
		sealed, serr := NewSealedRepository(repo, cfg.Storage.Secret)
		if serr != nil {
			_ = closeFn()
			return nil, func() error { return nil }, serr
		}
		repo = sealed
	}

	log.Debug().Str("driver", cfg.Storage.Driver).Bool("sealed", cfg.Storage.Secret != "").Msg("storage de slots listo")
	return repo, closeFn, nil
}
