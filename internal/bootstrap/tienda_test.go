package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria-iris/tienda/internal/application/auth"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
	"github.com/muebleria-iris/tienda/pkg/config"
	"github.com/muebleria-iris/tienda/pkg/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		App:     config.AppConfig{Env: "test", Name: "tienda"},
		API:     config.APIConfig{BaseURL: "http://127.0.0.1:1/api", Timeout: time.Second},
		Storage: config.StorageConfig{Driver: config.StorageFile, Path: filepath.Join(t.TempDir(), "slots.json")},
		Session: config.SessionConfig{CheckInterval: time.Minute},
		Tienda:  config.TiendaConfig{Nombre: "Mueblería Iris"},
	}
}

func TestNew_CarritoSobreviveReinicio(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()
	nav := auth.NavigatorFunc(func(string) {})

	first, err := New(ctx, cfg, logger.Nop(), nav)
	require.NoError(t, err)
	require.NoError(t, first.Cart.AddToCart(entity.CartItem{ID: 1, Nombre: "Sofa", Precio: 10000}, 2))
	require.NoError(t, first.Close())

	second, err := New(ctx, cfg, logger.Nop(), nav)
	require.NoError(t, err)
	defer second.Close()
	assert.Equal(t, 2, second.Cart.Count())
}

func TestNew_ListenerUnicoRegistrado(t *testing.T) {
	tienda, err := New(context.Background(), testConfig(t), logger.Nop(), nil)
	require.NoError(t, err)
	defer tienda.Close()

	assert.True(t, tienda.Bus.AgregarAlCarrito.HasHandler())
}

func TestNew_StorageInvalidoCaeAMemoria(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Driver = "cassandra"

	tienda, err := New(context.Background(), cfg, logger.Nop(), nil)
	require.NoError(t, err)
	defer tienda.Close()

	assert.Nil(t, tienda.Repo)
	require.NoError(t, tienda.Cart.AddToCart(entity.CartItem{ID: 1, Precio: 1}, 1))
	assert.Equal(t, 1, tienda.Cart.Count())
}

func TestStart_SinSesionNoLlamaALaRed(t *testing.T) {
	tienda, err := New(context.Background(), testConfig(t), logger.Nop(), nil)
	require.NoError(t, err)
	defer tienda.Close()

	tienda.Start(context.Background())
	assert.False(t, tienda.Auth.IsAuthenticated())
}
