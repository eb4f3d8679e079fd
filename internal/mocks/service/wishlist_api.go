package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockWishlistAPI is a mock type for the WishlistAPI type
type MockWishlistAPI struct {
	mock.Mock
}

func NewMockWishlistAPI(t TestingT) *MockWishlistAPI {
	m := &MockWishlistAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWishlistAPI) GetWishlist(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]entity.Product)

	return products, args.Error(1)
}

func (m *MockWishlistAPI) AddToWishlist(ctx context.Context, productID string) ([]string, error) {
	args := m.Called(ctx, productID)
	ids, _ := args.Get(0).([]string)

	return ids, args.Error(1)
}

func (m *MockWishlistAPI) RemoveFromWishlist(ctx context.Context, productID string) ([]string, error) {
	args := m.Called(ctx, productID)
	ids, _ := args.Get(0).([]string)

	return ids, args.Error(1)
}
