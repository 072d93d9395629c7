package entity

// Roles válidos para User.
const (
	RolAdmin    = "admin"
	RolVendedor = "vendedor"
	RolCliente  = "cliente"
)

// User es el registro de usuario que devuelve la API (sin password).
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Rol       string `json:"rol"`
	ClienteID *int   `json:"cliente_id,omitempty"`
}

// NombreCompleto nombre y apellido para saludos y cotizaciones.
func (u User) NombreCompleto() string {
	if u.Apellido == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellido
}

// AuthState es la sesión del cliente: usuario y token viajan siempre juntos.
type AuthState struct {
	User  *User  `json:"user"`
	Token string `json:"-"`
}

// IsAuthenticated ⇔ hay usuario y token.
func (s AuthState) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// IsAdmin depende solo de user.rol.
func (s AuthState) IsAdmin() bool {
	return s.User != nil && s.User.Rol == RolAdmin
}

// IsVendedor depende solo de user.rol.
func (s AuthState) IsVendedor() bool {
	return s.User != nil && s.User.Rol == RolVendedor
}
