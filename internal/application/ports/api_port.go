package ports

import (
	"context"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// AuthAPI puerto de salida hacia los endpoints de autenticación de la API de la mueblería.
// Los errores de la API se devuelven como *api.Error para que el llamador pueda leer
// los campos error/detalle del cuerpo.
type AuthAPI interface {
	// Login envía las credenciales a POST /auth/login.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	// Register crea la cuenta con POST /auth/register y devuelve la sesión iniciada.
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	// Me consulta GET /auth/me con el token como Bearer.
	Me(ctx context.Context, token string) (*entity.User, error)
}

// CatalogAPI puerto de lectura del catálogo público.
type CatalogAPI interface {
	ListProductos(ctx context.Context, filtro dto.ProductoFiltro) ([]entity.Producto, error)
	GetProducto(ctx context.Context, id int) (*entity.Producto, error)
	ListCategorias(ctx context.Context) ([]entity.Categoria, error)
}

// OrderAPI puerto para crear pedidos a nombre del usuario autenticado.
type OrderAPI interface {
	CrearPedido(ctx context.Context, token string, req dto.CrearPedidoRequest) (*entity.Pedido, error)
}
