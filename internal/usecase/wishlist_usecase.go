package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// WishlistUsecase is the client's view of which products are wishlisted.
// Mutations are applied optimistically and rolled back on failure.
type WishlistUsecase interface {
	IsInWishlist(productID string) bool
	IDs() []string
	Count() int

	Add(ctx context.Context, productID string) (entity.WishlistMutation, error)
	Remove(ctx context.Context, productID string) (entity.WishlistMutation, error)
	// Toggle is the entry point for interactive controls; it decides the
	// direction from current membership atomically.
	Toggle(ctx context.Context, productID string) (entity.WishlistMutation, error)

	// Refresh replaces the local set with the server's.
	Refresh(ctx context.Context) error
	// Products returns the full wishlisted records and resynchronises the set.
	Products(ctx context.Context) ([]entity.Product, error)
	// Pending lists in-flight mutations in submission order.
	Pending() []entity.WishlistMutation
	// ClearIfSignedOut empties the set when no session token is stored.
	ClearIfSignedOut(ctx context.Context) error
}
