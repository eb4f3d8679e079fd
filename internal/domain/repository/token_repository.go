// Package repository declares the persistence ports of the storefront.
package repository

import (
	"context"
	"time"
)

// TokenRepository persists the one durable client-side value: the session
// token. It plays the role a browser cookie would.
type TokenRepository interface {
	// Load returns the stored token, or "" when none is stored or it expired.
	Load(ctx context.Context) (string, error)

	// Save stores the token, replacing any previous one, until ttl elapses.
	Save(ctx context.Context, token string, ttl time.Duration) error

	// Delete removes the token. Deleting a missing token is not an error.
	Delete(ctx context.Context) error

	// Close releases the underlying store.
	Close() error
}
