package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves the profile and address book.
type AccountHandler struct {
	account usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(account usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{account: account}
}

func (h *AccountHandler) GetProfile(c echo.Context) error {
	profile, err := h.account.Profile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var input service.ProfileUpdate
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	user, err := h.account.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

func (h *AccountHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.account.Addresses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

func (h *AccountHandler) GetAddress(c echo.Context) error {
	address, err := h.account.Address(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "")
}

func (h *AccountHandler) AddAddress(c echo.Context) error {
	var input entity.Address
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	addresses, err := h.account.AddAddress(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, addresses, "Address added")
}

func (h *AccountHandler) RemoveAddress(c echo.Context) error {
	addresses, err := h.account.RemoveAddress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Address removed")
}
