// Package auth reads the remote API's session tokens.
package auth

import (
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtDecoder implements TokenDecoder. The storefront has no signing key, so
// tokens are parsed without verification; the remote API remains the only
// judge of validity.
type jwtDecoder struct {
	parser *jwt.Parser
}

// NewJWTDecoder is the constructor for jwtDecoder.
func NewJWTDecoder() service.TokenDecoder {
	return &jwtDecoder{parser: jwt.NewParser()}
}

// Decode extracts the claims the remote API embeds in a token.
func (d *jwtDecoder) Decode(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	if _, _, err := d.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	if claims.UserID == "" {
		return nil, errors.New("token carries no user id")
	}

	return claims, nil
}
