package handler

import (
	"context"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler serves the heart buttons and the wishlist page.
type WishlistHandler struct {
	wishlist usecase.WishlistUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(wishlist usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// WishlistState is the id set as a view renders it.
type WishlistState struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

// MutationResult is a resolved wishlist change and the resulting membership.
type MutationResult struct {
	Mutation   entity.WishlistMutation `json:"mutation"`
	InWishlist bool                    `json:"inWishlist"`
	Count      int                     `json:"count"`
}

func (h *WishlistHandler) state() WishlistState {
	return WishlistState{IDs: h.wishlist.IDs(), Count: h.wishlist.Count()}
}

func (h *WishlistHandler) IDs(c echo.Context) error {
	if err := h.wishlist.ClearIfSignedOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.state(), "")
}

func (h *WishlistHandler) Products(c echo.Context) error {
	products, err := h.wishlist.Products(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

func (h *WishlistHandler) Refresh(c echo.Context) error {
	if err := h.wishlist.Refresh(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.state(), "")
}

func (h *WishlistHandler) Pending(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.wishlist.Pending(), "")
}

func (h *WishlistHandler) Toggle(c echo.Context) error {
	return h.mutate(c, h.wishlist.Toggle)
}

func (h *WishlistHandler) Add(c echo.Context) error {
	return h.mutate(c, h.wishlist.Add)
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	return h.mutate(c, h.wishlist.Remove)
}

func (h *WishlistHandler) mutate(c echo.Context, op func(ctx context.Context, productID string) (entity.WishlistMutation, error)) error {
	productID := c.Param("id")

	mutation, err := op(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Product added to wishlist"
	if mutation.Kind == entity.MutationRemove {
		message = "Product removed from wishlist"
	}

	return response.Success(c, http.StatusOK, MutationResult{
		Mutation:   mutation,
		InWishlist: h.wishlist.IsInWishlist(productID),
		Count:      h.wishlist.Count(),
	}, message)
}
