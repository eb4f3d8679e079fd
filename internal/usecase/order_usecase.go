package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutPage is what the checkout view needs before payment.
type CheckoutPage struct {
	CartID    string           `json:"cartId"`
	Cart      *entity.Cart     `json:"cart"`
	Addresses []entity.Address `json:"addresses"`
}

// OrderUsecase places and lists orders.
type OrderUsecase interface {
	PrepareCheckout(ctx context.Context) (*CheckoutPage, error)
	CreateCashOrder(ctx context.Context, address entity.ShippingAddress) (*entity.Order, error)
	// CreateCheckoutSession returns the hosted payment URL and a QR code of it.
	CreateCheckoutSession(ctx context.Context, address entity.ShippingAddress) (*entity.CheckoutSession, error)
	ListMyOrders(ctx context.Context) ([]entity.Order, error)

	// Administrative
	ListAllOrders(ctx context.Context) ([]entity.Order, error)
	ListUsers(ctx context.Context) ([]entity.Profile, error)
}
