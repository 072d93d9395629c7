// Package backoffice expone los recursos de administración de la API filtrados por rol.
package backoffice

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/rs/zerolog"

	"github.com/muebleria-iris/tienda/internal/domain"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
	"github.com/muebleria-iris/tienda/internal/infrastructure/api"
)

// Accion sobre un recurso.
type Accion int

const (
	Leer Accion = iota
	Escribir
)

func (a Accion) String() string {
	if a == Escribir {
		return "escribir"
	}
	return "leer"
}

// permisos por rol: recurso → máxima acción permitida. El admin accede a todo.
var permisos = map[string]map[string]Accion{
	entity.RolVendedor: {
		"clientes":   Escribir,
		"pedidos":    Escribir,
		"inventario": Escribir,
		"productos":  Leer,
	},
}

// Recursos colecciones de la API disponibles en el backoffice.
var Recursos = []string{"productos", "categorias", "clientes", "inventario", "pedidos", "proveedores", "usuarios"}

// Session lo que el backoffice necesita de la sesión.
type Session interface {
	State() entity.AuthState
}

// Service CRUD genérico sobre las colecciones de la API.
type Service struct {
	session   Session
	resources map[string]*api.Resource[api.Registro]
	log       zerolog.Logger
}

// NewService enlaza cada colección conocida al cliente HTTP.
func NewService(c *api.Client, session Session, log zerolog.Logger) *Service {
	res := make(map[string]*api.Resource[api.Registro], len(Recursos))
	for _, r := range Recursos {
		res[r] = api.NewResource[api.Registro](c, "/"+r)
	}
	return &Service{session: session, resources: res, log: log}
}

// Permitido indica si el rol puede ejecutar accion sobre recurso.
func Permitido(rol, recurso string, accion Accion) bool {
	if rol == entity.RolAdmin {
		return true
	}
	limite, ok := permisos[rol][recurso]
	return ok && accion <= limite
}

// Visibles recursos que el usuario actual puede al menos leer, ordenados.
func (s *Service) Visibles() []string {
	st := s.session.State()
	if !st.IsAuthenticated() {
		return nil
	}
	var out []string
	for _, r := range Recursos {
		if Permitido(st.User.Rol, r, Leer) {
			out = append(out, r)
		}
	}
	sort.Strings(out)
	return out
}

func (s *Service) authorize(recurso string, accion Accion) (*api.Resource[api.Registro], string, error) {
	res, ok := s.resources[recurso]
	if !ok {
		return nil, "", fmt.Errorf("%w: recurso %q", domain.ErrNotFound, recurso)
	}
	st := s.session.State()
	if !st.IsAuthenticated() {
		return nil, "", domain.ErrSinSesion
	}
	if !Permitido(st.User.Rol, recurso, accion) {
		s.log.Warn().Str("rol", st.User.Rol).Str("recurso", recurso).Stringer("accion", accion).Msg("acceso denegado")
		return nil, "", domain.ErrForbidden
	}
	return res, st.Token, nil
}

func (s *Service) Listar(ctx context.Context, recurso string, query url.Values) ([]api.Registro, error) {
	res, tok, err := s.authorize(recurso, Leer)
	if err != nil {
		return nil, err
	}
	return res.List(ctx, tok, query)
}

func (s *Service) Obtener(ctx context.Context, recurso string, id int) (api.Registro, error) {
	res, tok, err := s.authorize(recurso, Leer)
	if err != nil {
		return nil, err
	}
	out, err := res.Get(ctx, tok, id)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *Service) Crear(ctx context.Context, recurso string, in api.Registro) (api.Registro, error) {
	res, tok, err := s.authorize(recurso, Escribir)
	if err != nil {
		return nil, err
	}
	out, err := res.Create(ctx, tok, in)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *Service) Actualizar(ctx context.Context, recurso string, id int, in api.Registro) (api.Registro, error) {
	res, tok, err := s.authorize(recurso, Escribir)
	if err != nil {
		return nil, err
	}
	out, err := res.Update(ctx, tok, id, in)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (s *Service) Eliminar(ctx context.Context, recurso string, id int) error {
	res, tok, err := s.authorize(recurso, Escribir)
	if err != nil {
		return err
	}
	return res.Delete(ctx, tok, id)
}
