package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Session  usecase.SessionUsecase
	Wishlist usecase.WishlistUsecase
	Logger   *slog.Logger
}

// SessionHandler serves login, logout and password flows.
type SessionHandler struct {
	session  usecase.SessionUsecase
	wishlist usecase.WishlistUsecase
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		session:  params.Session,
		wishlist: params.Wishlist,
		logger:   params.Logger,
	}
}

// SessionState is what the header of every view renders.
type SessionState struct {
	Authenticated bool         `json:"authenticated"`
	User          *entity.User `json:"user,omitempty"`
	CartCount     int          `json:"cartCount"`
	WishlistCount int          `json:"wishlistCount"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyResetCodeRequest struct {
	ResetCode string `json:"resetCode" validate:"required"`
}

// Get returns the current session.
func (h *SessionHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	session := h.session.Session(ctx)
	if err := h.wishlist.ClearIfSignedOut(ctx); err != nil {
		h.logger.Warn("Failed to check wishlist session", slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, SessionState{
		Authenticated: session.Authenticated(),
		User:          session.User,
		CartCount:     h.session.CartCount(),
		WishlistCount: h.wishlist.Count(),
	}, "")
}

// Login handles the login form.
func (h *SessionHandler) Login(c echo.Context) error {
	var input service.Credentials
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.session.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}
	h.syncWishlist(c)

	return response.Navigate(c, output, "Login successful", output.Redirect)
}

// Register handles the sign-up form.
func (h *SessionHandler) Register(c echo.Context) error {
	var input service.SignUpInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.session.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}
	h.syncWishlist(c)

	return response.Navigate(c, output, "Account created", output.Redirect)
}

// Logout ends the session. It never fails.
func (h *SessionHandler) Logout(c echo.Context) error {
	output := h.session.Logout(c.Request().Context())
	h.syncWishlist(c)

	return response.Navigate(c, nil, "Logged out", output.Redirect)
}

// ForgotPassword emails a reset code.
func (h *SessionHandler) ForgotPassword(c echo.Context) error {
	var input forgotPasswordRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	message, err := h.session.ForgotPassword(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}

// VerifyResetCode checks the emailed code.
func (h *SessionHandler) VerifyResetCode(c echo.Context) error {
	var input verifyResetCodeRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.session.VerifyResetCode(c.Request().Context(), input.ResetCode); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Code verified")
}

// ResetPassword sets a new password and logs in.
func (h *SessionHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	output, err := h.session.ResetPassword(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}
	h.syncWishlist(c)

	return response.Navigate(c, output, "Password reset", output.Redirect)
}

// ChangePassword changes the password of the logged-in account.
func (h *SessionHandler) ChangePassword(c echo.Context) error {
	var input service.PasswordChange
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	if err := h.session.ChangePassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed")
}

// syncWishlist realigns the wishlist with the new session.
func (h *SessionHandler) syncWishlist(c echo.Context) {
	if err := h.wishlist.Refresh(c.Request().Context()); err != nil {
		h.logger.Warn("Wishlist refresh after session change failed", slog.Any("error", err))
	}
}
