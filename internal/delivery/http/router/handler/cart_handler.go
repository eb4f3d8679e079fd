package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the cart page and the add-to-cart buttons.
type CartHandler struct {
	cart   usecase.CartUsecase
	mirror usecase.CartMirror
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, mirror usecase.CartMirror) *CartHandler {
	return &CartHandler{cart: cart, mirror: mirror}
}

// CartResult is a cart with the mirrored count after the operation.
type CartResult struct {
	Cart      *entity.CartView `json:"cart,omitempty"`
	CartCount int              `json:"cartCount"`
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type updateItemRequest struct {
	Count int `json:"count"`
}

func (h *CartHandler) Get(c echo.Context) error {
	view, err := h.cart.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CartResult{Cart: view, CartCount: h.mirror.CartCount()}, "")
}

// Count re-fetches the mirrored count. Without a session it is zero.
func (h *CartHandler) Count(c echo.Context) error {
	count := h.mirror.RefreshCartCount(c.Request().Context())

	return response.Success(c, http.StatusOK, CartResult{CartCount: count}, "")
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	view, err := h.cart.AddItem(c.Request().Context(), input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CartResult{Cart: view, CartCount: h.mirror.CartCount()}, "Product added to cart")
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	var input updateItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	view, err := h.cart.UpdateItemCount(c.Request().Context(), c.Param("id"), input.Count)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CartResult{Cart: view, CartCount: h.mirror.CartCount()}, "")
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.cart.RemoveItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CartResult{Cart: view, CartCount: h.mirror.CartCount()}, "Product removed")
}

func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cart.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CartResult{CartCount: h.mirror.CartCount()}, "Cart cleared")
}
