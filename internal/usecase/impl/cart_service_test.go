package impl

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItemRefreshesCount(t *testing.T) {
	api := mockService.NewMockCartAPI(t)
	mirror := &fakeMirror{count: 1}
	srv := NewCartService(CartServiceParams{CartAPI: api, Mirror: mirror, Logger: testLogger()})

	view := &entity.CartView{ItemCount: 1, Cart: &entity.Cart{ID: "c1"}}
	api.On("AddToCart", mock.Anything, "p1").Return(view, nil).Once()

	got, err := srv.AddItem(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, view, got)
	assert.Equal(t, 1, mirror.Refreshes())
}

func TestCartService_FailedMutationDoesNotRefresh(t *testing.T) {
	api := mockService.NewMockCartAPI(t)
	mirror := &fakeMirror{}
	srv := NewCartService(CartServiceParams{CartAPI: api, Mirror: mirror, Logger: testLogger()})

	api.On("RemoveCartItem", mock.Anything, "p1").
		Return(nil, domainerrors.NewUpstreamError(domainerrors.UpstreamHTTP, "/cart/p1", http.StatusNotFound, "no product", nil)).
		Once()

	_, err := srv.RemoveItem(context.Background(), "p1")

	require.Error(t, err)
	assert.Equal(t, 0, mirror.Refreshes())
}

func TestCartService_UpdateItemCount_RejectsBelowOne(t *testing.T) {
	api := mockService.NewMockCartAPI(t)
	srv := NewCartService(CartServiceParams{CartAPI: api, Mirror: &fakeMirror{}, Logger: testLogger()})

	for _, count := range []int{0, -3} {
		_, err := srv.UpdateItemCount(context.Background(), "p1", count)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
	}

	api.AssertNotCalled(t, "UpdateCartItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_UpdateItemCount(t *testing.T) {
	api := mockService.NewMockCartAPI(t)
	mirror := &fakeMirror{}
	srv := NewCartService(CartServiceParams{CartAPI: api, Mirror: mirror, Logger: testLogger()})

	api.On("UpdateCartItem", mock.Anything, "p1", 3).Return(&entity.CartView{ItemCount: 1}, nil).Once()

	_, err := srv.UpdateItemCount(context.Background(), "p1", 3)

	require.NoError(t, err)
	assert.Equal(t, 1, mirror.Refreshes())
}

func TestCartService_Clear(t *testing.T) {
	api := mockService.NewMockCartAPI(t)
	mirror := &fakeMirror{}
	srv := NewCartService(CartServiceParams{CartAPI: api, Mirror: mirror, Logger: testLogger()})

	api.On("ClearCart", mock.Anything).Return(nil).Once()

	require.NoError(t, srv.Clear(context.Background()))
	assert.Equal(t, 1, mirror.Refreshes())
}

// After adding a product the mirrored count is whatever the server reports,
// never a local increment.
func TestCartService_CountFollowsServerAfterAdd(t *testing.T) {
	session := newSessionFixture(t, newTestTokens(t))
	session.login(t, "tok-1", 0)

	cart := NewCartService(CartServiceParams{CartAPI: session.carts, Mirror: AsCartMirror(session.srv), Logger: testLogger()})

	session.carts.On("AddToCart", mock.Anything, "p1").Return(&entity.CartView{ItemCount: 5}, nil).Once()
	session.carts.On("GetCart", mock.Anything).Return(&entity.CartView{ItemCount: 1}, nil).Once()

	_, err := cart.AddItem(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, 1, session.srv.CartCount())
}

func TestCartService_GetWithoutSession(t *testing.T) {
	api := mockService.NewMockCartAPI(t)
	srv := NewCartService(CartServiceParams{CartAPI: api, Mirror: &fakeMirror{}, Logger: testLogger()})

	api.On("GetCart", mock.Anything).Return(nil, domainerrors.ErrUnauthenticated).Once()

	_, err := srv.Get(context.Background())

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
