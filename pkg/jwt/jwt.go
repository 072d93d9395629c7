package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrFormatoInvalido el token no tiene la forma header.payload.firma.
var ErrFormatoInvalido = errors.New("jwt: formato de token inválido")

// Claims refleja el payload que emite la API de la mueblería.
// La tienda nunca verifica la firma: solo la API conoce el secreto.
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"id"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// ValidFormat indica si el token tiene exactamente tres segmentos no vacíos separados por punto.
func ValidFormat(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// Decode decodifica el payload sin verificar la firma.
func Decode(token string) (*Claims, error) {
	if !ValidFormat(token) {
		return nil, ErrFormatoInvalido
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("jwt: decodificar payload: %w", err)
	}
	return claims, nil
}

// Expired compara exp contra now. Un token sin exp nunca expira localmente.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}

// Generate firma un token HS256 con la forma que usa la API. Lo usan los tests y el
// backend falso de desarrollo; la tienda en producción solo recibe tokens.
func Generate(secret string, userID int, email, rol string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
		Rol:    rol,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
