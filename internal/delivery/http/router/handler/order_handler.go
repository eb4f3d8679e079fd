package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves checkout, order history and the admin listings.
type OrderHandler struct {
	orders usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Checkout loads the cart and saved addresses for the checkout page.
func (h *OrderHandler) Checkout(c echo.Context) error {
	page, err := h.orders.PrepareCheckout(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// CreateCashOrder places the order and sends the view to the order history.
func (h *OrderHandler) CreateCashOrder(c echo.Context) error {
	var input entity.ShippingAddress
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	order, err := h.orders.CreateCashOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Navigate(c, order, "Order placed", "/allorders")
}

// CreateCheckoutSession returns the hosted payment URL for the view to open.
func (h *OrderHandler) CreateCheckoutSession(c echo.Context) error {
	var input entity.ShippingAddress
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	session, err := h.orders.CreateCheckoutSession(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Navigate(c, session, "Redirecting to payment", session.URL)
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.orders.ListMyOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orders.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

func (h *OrderHandler) ListUsers(c echo.Context) error {
	users, err := h.orders.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}
