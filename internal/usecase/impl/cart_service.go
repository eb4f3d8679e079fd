package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartAPI service.CartAPI
	Mirror  usecase.CartMirror
	Logger  *slog.Logger
}

type cartService struct {
	api    service.CartAPI
	mirror usecase.CartMirror
	logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		api:    params.CartAPI,
		mirror: params.Mirror,
		logger: params.Logger,
	}
}

func (srv *cartService) Get(ctx context.Context) (*entity.CartView, error) {
	view, err := srv.api.GetCart(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return view, nil
}

func (srv *cartService) AddItem(ctx context.Context, productID string) (*entity.CartView, error) {
	return srv.mutate(ctx, "add", productID, func() (*entity.CartView, error) {
		return srv.api.AddToCart(ctx, productID)
	})
}

// UpdateItemCount sets a line's quantity. Counts below one are refused
// without a call; removal is its own operation.
func (srv *cartService) UpdateItemCount(ctx context.Context, productID string, count int) (*entity.CartView, error) {
	if count < 1 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	return srv.mutate(ctx, "update", productID, func() (*entity.CartView, error) {
		return srv.api.UpdateCartItem(ctx, productID, count)
	})
}

func (srv *cartService) RemoveItem(ctx context.Context, productID string) (*entity.CartView, error) {
	return srv.mutate(ctx, "remove", productID, func() (*entity.CartView, error) {
		return srv.api.RemoveCartItem(ctx, productID)
	})
}

func (srv *cartService) Clear(ctx context.Context) error {
	if err := srv.api.ClearCart(ctx); err != nil {
		loggerFor(ctx, srv.logger).Warn("Failed to clear cart", slog.Any("error", err))

		return errors.WithStack(err)
	}

	srv.mirror.RefreshCartCount(ctx)

	return nil
}

// mutate runs a cart change and re-fetches the count on success.
func (srv *cartService) mutate(ctx context.Context, op, productID string, call func() (*entity.CartView, error)) (*entity.CartView, error) {
	logger := loggerFor(ctx, srv.logger).With(slog.String("op", op), slog.String("product_id", productID))

	view, err := call()
	if err != nil {
		logger.Warn("Cart change failed", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	count := srv.mirror.RefreshCartCount(ctx)
	logger.Debug("Cart changed", slog.Int("cart_count", count))

	return view, nil
}
