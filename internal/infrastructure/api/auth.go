package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/muebleria-iris/tienda/internal/application/dto"
	"github.com/muebleria-iris/tienda/internal/domain/entity"
)

// Login POST /auth/login.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", req, &out); err != nil {
		return nil, err
	}
	if err := checkAuthResponse(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register POST /auth/register.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &out); err != nil {
		return nil, err
	}
	if err := checkAuthResponse(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me GET /auth/me. Acepta el usuario plano o envuelto en {"user": ...}.
func (c *Client) Me(ctx context.Context, token string) (*entity.User, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &raw); err != nil {
		return nil, err
	}
	var wrapped struct {
		User *entity.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}
	var u entity.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("api: decodificar /auth/me: %w", err)
	}
	if u.ID == 0 && u.Email == "" {
		return nil, fmt.Errorf("api: /auth/me sin usuario")
	}
	return &u, nil
}

func checkAuthResponse(out *dto.AuthResponse) error {
	if out.User == nil || out.Token == "" {
		return fmt.Errorf("api: respuesta de autenticación sin user o token")
	}
	return nil
}
