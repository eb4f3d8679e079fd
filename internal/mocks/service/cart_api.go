package service

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCartAPI is a mock type for the CartAPI type
type MockCartAPI struct {
	mock.Mock
}

func NewMockCartAPI(t TestingT) *MockCartAPI {
	m := &MockCartAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartAPI) GetCart(ctx context.Context) (*entity.CartView, error) {
	args := m.Called(ctx)
	view, _ := args.Get(0).(*entity.CartView)

	return view, args.Error(1)
}

func (m *MockCartAPI) AddToCart(ctx context.Context, productID string) (*entity.CartView, error) {
	args := m.Called(ctx, productID)
	view, _ := args.Get(0).(*entity.CartView)

	return view, args.Error(1)
}

func (m *MockCartAPI) UpdateCartItem(ctx context.Context, productID string, count int) (*entity.CartView, error) {
	args := m.Called(ctx, productID, count)
	view, _ := args.Get(0).(*entity.CartView)

	return view, args.Error(1)
}

func (m *MockCartAPI) RemoveCartItem(ctx context.Context, productID string) (*entity.CartView, error) {
	args := m.Called(ctx, productID)
	view, _ := args.Get(0).(*entity.CartView)

	return view, args.Error(1)
}

func (m *MockCartAPI) ClearCart(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
