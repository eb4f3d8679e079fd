package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the remote API embeds in its session tokens.
type Claims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenDecoder reads claims out of a session token without verifying it.
// The storefront never holds the signing key; validity is only ever
// established by the remote API.
type TokenDecoder interface {
	Decode(token string) (*Claims, error)
}

// ExpiresAtTime returns the expiry claim, or the zero time when absent.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}

	return c.ExpiresAt.Time
}
