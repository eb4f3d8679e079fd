package auth

import (
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key-the-storefront-never-sees"))
	require.NoError(t, err)

	return token
}

func TestJWTDecoder_Decode(t *testing.T) {
	expires := time.Now().Add(90 * 24 * time.Hour).Truncate(time.Second)
	token := signTestToken(t, service.Claims{
		UserID: "6407cf6f515bdcf347c09f17",
		Name:   "Ann",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	claims, err := NewJWTDecoder().Decode(token)

	require.NoError(t, err)
	assert.Equal(t, "6407cf6f515bdcf347c09f17", claims.UserID)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "user", claims.Role)
	assert.True(t, expires.Equal(claims.ExpiresAtTime()))
}

func TestJWTDecoder_ExpiredTokenStillDecodes(t *testing.T) {
	token := signTestToken(t, service.Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	claims, err := NewJWTDecoder().Decode(token)

	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestJWTDecoder_InvalidToken(t *testing.T) {
	claims, err := NewJWTDecoder().Decode("clearly-not-a-jwt-token-format")

	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTDecoder_MissingUserID(t *testing.T) {
	token := signTestToken(t, service.Claims{Name: "Ann"})

	_, err := NewJWTDecoder().Decode(token)

	assert.Error(t, err)
}
