package impl

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// WishlistServiceParams holds dependencies for wishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistAPI service.WishlistAPI
	Tokens      repository.TokenRepository
	Logger      *slog.Logger
}

// wishlistService keeps the set of wishlisted product ids. Each change is
// applied locally first and tracked as a WishlistMutation until the server
// answers. Confirmations reconcile the product against the server's list;
// failures restore the membership the mutation replaced. When mutations on
// the same product overlap, the last one to resolve determines membership.
type wishlistService struct {
	mu      sync.Mutex
	ids     map[string]struct{}
	seq     uint64
	pending map[uint64]*entity.WishlistMutation

	api    service.WishlistAPI
	tokens repository.TokenRepository
	logger *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		ids:     make(map[string]struct{}),
		pending: make(map[uint64]*entity.WishlistMutation),
		api:     params.WishlistAPI,
		tokens:  params.Tokens,
		logger:  params.Logger,
	}
}

func (srv *wishlistService) IsInWishlist(productID string) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	_, ok := srv.ids[productID]

	return ok
}

// IDs returns the wishlisted ids in sorted order.
func (srv *wishlistService) IDs() []string {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	ids := make([]string, 0, len(srv.ids))
	for id := range srv.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (srv *wishlistService) Count() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return len(srv.ids)
}

// Add wishlists a product.
func (srv *wishlistService) Add(ctx context.Context, productID string) (entity.WishlistMutation, error) {
	srv.mu.Lock()
	mutation := srv.beginLocked(productID, entity.MutationAdd)
	srv.mu.Unlock()

	return srv.send(ctx, mutation)
}

// Remove drops a product from the wishlist.
func (srv *wishlistService) Remove(ctx context.Context, productID string) (entity.WishlistMutation, error) {
	srv.mu.Lock()
	mutation := srv.beginLocked(productID, entity.MutationRemove)
	srv.mu.Unlock()

	return srv.send(ctx, mutation)
}

// Toggle adds when absent and removes when present.
func (srv *wishlistService) Toggle(ctx context.Context, productID string) (entity.WishlistMutation, error) {
	srv.mu.Lock()
	kind := entity.MutationAdd
	if _, ok := srv.ids[productID]; ok {
		kind = entity.MutationRemove
	}
	mutation := srv.beginLocked(productID, kind)
	srv.mu.Unlock()

	return srv.send(ctx, mutation)
}

// beginLocked applies the change optimistically and records it as pending.
func (srv *wishlistService) beginLocked(productID string, kind entity.MutationKind) entity.WishlistMutation {
	_, before := srv.ids[productID]

	srv.seq++
	mutation := &entity.WishlistMutation{
		Seq:       srv.seq,
		ProductID: productID,
		Kind:      kind,
		State:     entity.MutationPending,
		Before:    before,
	}
	srv.pending[mutation.Seq] = mutation
	srv.setLocked(productID, kind == entity.MutationAdd)

	return *mutation
}

func (srv *wishlistService) send(ctx context.Context, mutation entity.WishlistMutation) (entity.WishlistMutation, error) {
	var (
		ids []string
		err error
	)

	if mutation.Kind == entity.MutationAdd {
		ids, err = srv.api.AddToWishlist(ctx, mutation.ProductID)
	} else {
		ids, err = srv.api.RemoveFromWishlist(ctx, mutation.ProductID)
	}

	return srv.settle(ctx, mutation, ids, err)
}

// settle resolves a pending mutation with the server's answer.
func (srv *wishlistService) settle(ctx context.Context, mutation entity.WishlistMutation, ids []string, err error) (entity.WishlistMutation, error) {
	logger := loggerFor(ctx, srv.logger).With(
		slog.String("product_id", mutation.ProductID),
		slog.String("kind", string(mutation.Kind)),
		slog.Uint64("seq", mutation.Seq),
	)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.pending, mutation.Seq)

	if err != nil {
		mutation.State = entity.MutationRolledBack
		srv.setLocked(mutation.ProductID, mutation.Before)
		logger.Warn("Wishlist change rolled back", slog.Any("error", err))

		return mutation, errors.WithStack(err)
	}

	mutation.State = entity.MutationConfirmed
	if ids != nil {
		srv.setLocked(mutation.ProductID, slices.Contains(ids, mutation.ProductID))
	}
	logger.Debug("Wishlist change confirmed")

	return mutation, nil
}

func (srv *wishlistService) setLocked(productID string, member bool) {
	if member {
		srv.ids[productID] = struct{}{}
	} else {
		delete(srv.ids, productID)
	}
}

// Refresh replaces the local set with the server's. Without a session the
// set is cleared and no call is made. On failure the set is left as is.
func (srv *wishlistService) Refresh(ctx context.Context) error {
	_, err := srv.Products(ctx)

	return err
}

// Products fetches the wishlisted products and replaces the local set.
func (srv *wishlistService) Products(ctx context.Context) ([]entity.Product, error) {
	logger := loggerFor(ctx, srv.logger)

	token, err := srv.tokens.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session token")
	}

	if token == "" {
		srv.mu.Lock()
		clear(srv.ids)
		srv.mu.Unlock()

		return []entity.Product{}, nil
	}

	products, err := srv.api.GetWishlist(ctx)
	if err != nil {
		logger.Warn("Failed to fetch wishlist", slog.Any("error", err))

		return nil, errors.WithStack(err)
	}

	srv.mu.Lock()
	clear(srv.ids)
	for _, product := range products {
		srv.ids[product.ProductID()] = struct{}{}
	}
	srv.mu.Unlock()

	logger.Debug("Wishlist refreshed", slog.Int("count", len(products)))

	return products, nil
}

// ClearIfSignedOut drops the previous user's ids once the token is gone.
// No call is made.
func (srv *wishlistService) ClearIfSignedOut(ctx context.Context) error {
	token, err := srv.tokens.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read session token")
	}

	if token == "" {
		srv.mu.Lock()
		clear(srv.ids)
		srv.mu.Unlock()
	}

	return nil
}

// Pending lists in-flight mutations in submission order.
func (srv *wishlistService) Pending() []entity.WishlistMutation {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	pending := make([]entity.WishlistMutation, 0, len(srv.pending))
	for _, mutation := range srv.pending {
		pending = append(pending, *mutation)
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Seq < pending[j].Seq })

	return pending
}
