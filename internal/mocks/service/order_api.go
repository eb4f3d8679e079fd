package service

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockOrderAPI is a mock type for the OrderAPI type
type MockOrderAPI struct {
	mock.Mock
}

func NewMockOrderAPI(t TestingT) *MockOrderAPI {
	m := &MockOrderAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderAPI) CreateCashOrder(ctx context.Context, cartID string, address entity.ShippingAddress) (*entity.Order, error) {
	args := m.Called(ctx, cartID, address)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderAPI) CreateCheckoutSession(ctx context.Context, cartID, returnURL string, address entity.ShippingAddress) (string, error) {
	args := m.Called(ctx, cartID, returnURL, address)

	return args.String(0), args.Error(1)
}

func (m *MockOrderAPI) ListUserOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]entity.Order)

	return orders, args.Error(1)
}

func (m *MockOrderAPI) ListAllOrders(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]entity.Order)

	return orders, args.Error(1)
}

// MockTokenDecoder is a mock type for the TokenDecoder type
type MockTokenDecoder struct {
	mock.Mock
}

func NewMockTokenDecoder(t TestingT) *MockTokenDecoder {
	m := &MockTokenDecoder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenDecoder) Decode(token string) (*service.Claims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}

// MockQRCodeService is a mock type for the QRCodeService type
type MockQRCodeService struct {
	mock.Mock
}

func NewMockQRCodeService(t TestingT) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateURLQR(url string) ([]byte, error) {
	args := m.Called(url)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}

var (
	_ service.AuthAPI       = (*MockAuthAPI)(nil)
	_ service.CartAPI       = (*MockCartAPI)(nil)
	_ service.WishlistAPI   = (*MockWishlistAPI)(nil)
	_ service.CatalogAPI    = (*MockCatalogAPI)(nil)
	_ service.AddressAPI    = (*MockAddressAPI)(nil)
	_ service.UserAPI       = (*MockUserAPI)(nil)
	_ service.OrderAPI      = (*MockOrderAPI)(nil)
	_ service.TokenDecoder  = (*MockTokenDecoder)(nil)
	_ service.QRCodeService = (*MockQRCodeService)(nil)
)
