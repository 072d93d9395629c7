// Package auth mantiene la sesión del cliente de la tienda: usuario, token y estado de
// carga, persistidos entre reinicios y compartidos por todas las vistas.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/application/ports"
	"github.com/muebleria-iris/tienda/internal/application/store"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
	"github.com/muebleria-iris/tienda/internal/domain/repository"
	"github.com/muebleria-iris/tienda/internal/infrastructure/api"
	"github.com/muebleria-iris/tienda/pkg/jwt"
)

// Slots de persistencia de la sesión.
const (
	SlotUsuario = "muebleria-user"
	SlotToken   = "muebleria-token"
)

// HomePath destino de la navegación tras cerrar sesión.
const HomePath = "/"

const (
	msgLoginFallido    = "Error al iniciar sesión"
	msgRegistroFallido = "Error al registrarse"
	msgVerifyFallido   = "Sesión inválida"
	msgSinToken        = "No hay sesión activa"
)

// Navigator redirige la vista activa. Logout lo invoca una vez por llamada.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapta una función a Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Store singleton de sesión.
//
// user y token se escriben siempre juntos bajo mu y se publican en state, que es la
// única celda que ven los suscriptores: nunca se observa uno sin el otro.
type Store struct {
	api ports.AuthAPI
	nav Navigator
	log zerolog.Logger
	now func() time.Time

	mu      sync.Mutex
	user    *store.Persistent[*entity.User]
	token   *store.Persistent[string]
	state   *store.Cell[entity.AuthState]
	loading *store.Cell[bool]

	startOnce sync.Once
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj usado por CheckAuth.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore restaura la sesión desde repo. Un token restaurado con formato inválido se
// descarta junto con el usuario; una sesión incompleta (solo usuario o solo token)
// también se descarta. No hace llamadas de red: la verificación remota la dispara Start.
func NewStore(ctx context.Context, authAPI ports.AuthAPI, repo repository.SlotRepository, nav Navigator, log zerolog.Logger, opts ...Option) *Store {
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	s := &Store{
		api: authAPI,
		nav: nav,
		log: log,
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.user = store.NewPersistent(ctx, repo, SlotUsuario, nil, store.NullableJSONCodec[entity.User](), log)
	s.token = store.NewPersistent(ctx, repo, SlotToken, "", store.StringCodec(), log)

	u, tok := s.user.Get(), s.token.Get()
	discard := false
	switch {
	case tok != "" && !jwt.ValidFormat(tok):
		s.log.Warn().Msg("token restaurado con formato inválido, se descarta la sesión")
		discard = true
	case (u == nil) != (tok == ""):
		s.log.Warn().Msg("sesión restaurada incompleta, se descarta")
		discard = true
	}
	if discard {
		u, tok = nil, ""
		s.user.Set(nil)
		s.token.Set("")
	}
	s.state = store.NewCell(entity.AuthState{User: u, Token: tok})
	s.loading = store.NewCell(false)
	return s
}

// Start programa la verificación remota del token restaurado. Solo la primera llamada
// tiene efecto; si la verificación falla se cierra la sesión.
func (s *Store) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		if s.state.Get().Token == "" {
			return
		}
		if res := s.VerifyToken(ctx); !res.Success {
			s.log.Info().Str("motivo", res.Error).Msg("token restaurado rechazado, cerrando sesión")
			s.Logout()
		}
	})
}

// Login autentica contra la API. Los fallos se devuelven en el resultado y no tocan la sesión.
func (s *Store) Login(ctx context.Context, email, password string) dto.AuthResult {
	return s.authenticate(ctx, msgLoginFallido, func() (*dto.AuthResponse, error) {
		return s.api.Login(ctx, dto.LoginRequest{Email: email, Password: password})
	})
}

// Register crea la cuenta y deja la sesión iniciada, con el mismo contrato que Login.
func (s *Store) Register(ctx context.Context, in dto.RegisterRequest) dto.AuthResult {
	return s.authenticate(ctx, msgRegistroFallido, func() (*dto.AuthResponse, error) {
		return s.api.Register(ctx, in)
	})
}

func (s *Store) authenticate(ctx context.Context, fallback string, call func() (*dto.AuthResponse, error)) (res dto.AuthResult) {
	s.loading.Set(true)
	defer s.loading.Set(false)
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("auth: pánico en llamada a la API")
			res = dto.AuthResult{Error: fallback}
		}
	}()

	out, err := call()
	if err != nil {
		s.log.Debug().Err(err).Msg("auth: autenticación rechazada")
		return dto.AuthResult{Error: api.UserMessage(err, fallback)}
	}
	s.setSession(out.User, out.Token)
	s.log.Info().Int("user_id", out.User.ID).Str("rol", out.User.Rol).Msg("sesión iniciada")
	return dto.AuthResult{Success: true}
}

// Logout limpia usuario y token y navega al inicio.
func (s *Store) Logout() {
	s.setSession(nil, "")
	s.nav.Navigate(HomePath)
}

// VerifyToken consulta /auth/me con el token actual. Sin token falla sin llamar a la red.
// En éxito refresca solo el usuario; en fallo no modifica la sesión.
func (s *Store) VerifyToken(ctx context.Context) dto.AuthResult {
	tok := s.state.Get().Token
	if tok == "" {
		return dto.AuthResult{Error: msgSinToken}
	}
	u, err := s.api.Me(ctx, tok)
	if err != nil {
		return dto.AuthResult{Error: api.UserMessage(err, msgVerifyFallido)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// La sesión pudo cambiar mientras esperábamos la red.
	if s.state.Get().Token != tok {
		return dto.AuthResult{Error: msgVerifyFallido}
	}
	s.user.Set(u)
	s.state.Set(entity.AuthState{User: u, Token: tok})
	return dto.AuthResult{Success: true}
}

// CheckAuth revisa localmente la expiración del token. Si venció cierra la sesión y
// devuelve false; un token ausente o malformado devuelve false sin efectos.
func (s *Store) CheckAuth() bool {
	tok := s.state.Get().Token
	if tok == "" {
		return false
	}
	claims, err := jwt.Decode(tok)
	if err != nil {
		return false
	}
	if claims.Expired(s.now()) {
		s.log.Info().Msg("token expirado, cerrando sesión")
		s.Logout()
		return false
	}
	return true
}

func (s *Store) setSession(u *entity.User, tok string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Set(u)
	s.token.Set(tok)
	s.state.Set(entity.AuthState{User: u, Token: tok})
}

// ── Lecturas ─────────────────────────────────────────────────────────────────

func (s *Store) State() entity.AuthState { return s.state.Get() }
func (s *Store) User() *entity.User      { return s.state.Get().User }
func (s *Store) Token() string           { return s.state.Get().Token }
func (s *Store) IsAuthenticated() bool   { return s.state.Get().IsAuthenticated() }
func (s *Store) IsAdmin() bool           { return s.state.Get().IsAdmin() }
func (s *Store) IsVendedor() bool        { return s.state.Get().IsVendedor() }
func (s *Store) IsLoading() bool         { return s.loading.Get() }

// Session vista serializable de la sesión, sin token.
func (s *Store) Session() dto.SessionResponse {
	st, v := s.state.Snapshot()
	return dto.SessionResponse{
		User:            st.User,
		IsAuthenticated: st.IsAuthenticated(),
		IsAdmin:         st.IsAdmin(),
		IsVendedor:      st.IsVendedor(),
		IsLoading:       s.loading.Get(),
		Version:         v,
	}
}

// Subscribe notifica cada cambio de sesión, empezando por el valor actual.
func (s *Store) Subscribe(fn func(entity.AuthState)) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}

// SubscribeLoading notifica los cambios de isLoading.
func (s *Store) SubscribeLoading(fn func(bool)) (unsubscribe func()) {
	return s.loading.Subscribe(fn)
}

// Flush espera a que los slots reflejen la sesión actual.
func (s *Store) Flush() {
	s.user.Flush()
	s.token.Flush()
}

// Close detiene las escritoras de los slots tras vaciar lo pendiente.
func (s *Store) Close() {
	s.user.Close()
	s.token.Close()
}
