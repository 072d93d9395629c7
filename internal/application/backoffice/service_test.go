package backoffice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
	"github.com/muebleria-iris/tienda/internal/infrastructure/api"
)

type staticSession struct{ st entity.AuthState }

func (s staticSession) State() entity.AuthState { return s.st }

func sessionDe(rol string) staticSession {
	return staticSession{entity.AuthState{User: &entity.User{ID: 1, Rol: rol}, Token: "a.b.c"}}
}

func newService(t *testing.T, sess Session) (*Service, *[]string) {
	t.Helper()
	var hits []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet && (r.URL.Path == "/clientes" || r.URL.Path == "/productos") {
			_ = json.NewEncoder(w).Encode([]api.Registro{{"id": 1}})
			return
		}
		_ = json.NewEncoder(w).Encode(api.Registro{"id": 1})
	}))
	t.Cleanup(srv.Close)
	c := api.NewClient(srv.URL, time.Second, zerolog.Nop())
	return NewService(c, sess, zerolog.Nop()), &hits
}

func TestPermitido(t *testing.T) {
	tests := []struct {
		rol, recurso string
		accion       Accion
		want         bool
	}{
		{entity.RolAdmin, "usuarios", Escribir, true},
		{entity.RolVendedor, "clientes", Escribir, true},
		{entity.RolVendedor, "productos", Leer, true},
		{entity.RolVendedor, "productos", Escribir, false},
		{entity.RolVendedor, "usuarios", Leer, false},
		{entity.RolCliente, "pedidos", Leer, false},
	}
	for _, tt := range tests {
		t.Run(tt.rol+"/"+tt.recurso+"/"+tt.accion.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Permitido(tt.rol, tt.recurso, tt.accion))
		})
	}
}

func TestListar_VendedorClientes(t *testing.T) {
	svc, hits := newService(t, sessionDe(entity.RolVendedor))

	out, err := svc.Listar(context.Background(), "clientes", nil)

	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, []string{"GET /clientes"}, *hits)
}

func TestCrear_VendedorProductosProhibido(t *testing.T) {
	svc, hits := newService(t, sessionDe(entity.RolVendedor))

	_, err := svc.Crear(context.Background(), "productos", api.Registro{"nombre": "Mesa"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, *hits)
}

func TestEliminar_SinSesion(t *testing.T) {
	svc, _ := newService(t, staticSession{})
	err := svc.Eliminar(context.Background(), "clientes", 1)
	assert.ErrorIs(t, err, domain.ErrSinSesion)
}

func TestObtener_RecursoDesconocido(t *testing.T) {
	svc, _ := newService(t, sessionDe(entity.RolAdmin))
	_, err := svc.Obtener(context.Background(), "facturas", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVisibles(t *testing.T) {
	svc, _ := newService(t, sessionDe(entity.RolVendedor))
	assert.Equal(t, []string{"clientes", "inventario", "pedidos", "productos"}, svc.Visibles())

	admin, _ := newService(t, sessionDe(entity.RolAdmin))
	assert.Len(t, admin.Visibles(), len(Recursos))

	anon, _ := newService(t, staticSession{})
	assert.Empty(t, anon.Visibles())
}

func TestActualizar_Admin(t *testing.T) {
	svc, hits := newService(t, sessionDe(entity.RolAdmin))
	_, err := svc.Actualizar(context.Background(), "usuarios", 4, api.Registro{"rol": "vendedor"})
	require.NoError(t, err)
	assert.Equal(t, []string{"PUT /usuarios/4"}, *hits)
}
