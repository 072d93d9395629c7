package jwt_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/muebleria-iris/tienda/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestValidFormat(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"aaa.bbb.ccc", true},
		{"not-a-jwt", false},
		{"a.b", false},
		{"a.b.c.d", false},
		{"a..c", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, pkgjwt.ValidFormat(tt.token))
		})
	}
}

func TestGenerateAndDecode(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 7, "ana@iris.cl", "vendedor", time.Hour)
	require.NoError(t, err)

	claims, err := pkgjwt.Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "ana@iris.cl", claims.Email)
	assert.Equal(t, "vendedor", claims.Rol)
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(time.Now().Add(2*time.Hour)))
}

func TestDecode_TokenVencidoSeDecodificaIgual(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "a@b.com", "cliente", -time.Minute)
	require.NoError(t, err)

	claims, err := pkgjwt.Decode(tok)
	require.NoError(t, err, "la decodificación local no valida exp")
	assert.True(t, claims.Expired(time.Now()))
}

func TestDecode_Malformado(t *testing.T) {
	_, err := pkgjwt.Decode("not-a-jwt")
	assert.ErrorIs(t, err, pkgjwt.ErrFormatoInvalido)

	_, err = pkgjwt.Decode("token.invalido.aqui")
	assert.Error(t, err)
}

func TestClaims_SinExpNoExpira(t *testing.T) {
	enc := base64.RawURLEncoding
	tok := enc.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." +
		enc.EncodeToString([]byte(`{"id":3,"rol":"admin"}`)) + ".firma"

	claims, err := pkgjwt.Decode(tok)
	require.NoError(t, err)
	assert.False(t, claims.Expired(time.Now()))
	assert.Equal(t, "admin", claims.Rol)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "a@b.com", "admin", time.Hour)
	assert.Error(t, err)
}
