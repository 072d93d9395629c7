package dto

import "github.com/muebleria-iris/tienda/internal/domain/entity"

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest cuerpo de POST /auth/register.
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Apellido string `json:"apellido" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse respuesta de login y registro.
type AuthResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// AuthResult resultado de login/register/verify: los errores se devuelven como valor.
type AuthResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SessionResponse estado de sesión que ven las islas de UI (el token nunca sale).
type SessionResponse struct {
	User            *entity.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsAdmin         bool         `json:"isAdmin"`
	IsVendedor      bool         `json:"isVendedor"`
	IsLoading       bool         `json:"isLoading"`
	Version         uint64       `json:"version"`
}
