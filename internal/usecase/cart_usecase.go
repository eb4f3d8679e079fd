package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase mutates cart lines. Every successful mutation re-fetches the
// cart count rather than adjusting it locally.
type CartUsecase interface {
	Get(ctx context.Context) (*entity.CartView, error)
	AddItem(ctx context.Context, productID string) (*entity.CartView, error)
	UpdateItemCount(ctx context.Context, productID string, count int) (*entity.CartView, error)
	RemoveItem(ctx context.Context, productID string) (*entity.CartView, error)
	Clear(ctx context.Context) error
}
