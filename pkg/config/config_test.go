package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, StorageFile, cfg.Storage.Driver)
	assert.Equal(t, "http://localhost:3000/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, time.Minute, cfg.Session.CheckInterval)
	assert.Equal(t, "127.0.0.1:4321", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("API_BASE_URL", "https://api.muebleriairis.cl/api/")
	v.Set("API_TIMEOUT", "30")
	v.Set("STORAGE_DRIVER", "REDIS")
	v.Set("REDIS_PORT", "6380")
	v.Set("SESSION_CHECK_INTERVAL", "5m")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://api.muebleriairis.cl/api", cfg.API.BaseURL, "se elimina el slash final")
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, StorageRedis, cfg.Storage.Driver)
	assert.Equal(t, "localhost:6380", cfg.Redis.Addr())
	assert.Equal(t, 5*time.Minute, cfg.Session.CheckInterval)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "sqlite")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "iris", Password: "p@ss/word", DBName: "muebleria", SSLMode: "disable"}
	assert.Equal(t, "postgres://iris:p%40ss%2Fword@db:5432/muebleria?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
