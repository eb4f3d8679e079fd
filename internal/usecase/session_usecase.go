// Package usecase contains the storefront's client state stores and the
// operations views perform through them.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// Navigation targets returned to views after session changes.
const (
	RedirectHome  = "/"
	RedirectLogin = "/login"
)

// --- Input DTOs ---

// ResetPasswordInput defines the data required to set a new password after
// the emailed code was verified.
type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// --- Output DTOs ---

// LoginOutput is the session after a successful login, register or reset.
type LoginOutput struct {
	Session   entity.Session `json:"session"`
	CartCount int            `json:"cartCount"`
	Redirect  string         `json:"redirect"`
}

// LogoutOutput tells the view where to go after logout.
type LogoutOutput struct {
	Redirect string `json:"redirect"`
}

// CartMirror is the client's copy of the server's cart item count.
type CartMirror interface {
	// RefreshCartCount re-fetches the count. Without a token it resets to
	// zero and makes no call; on failure the previous count is kept.
	RefreshCartCount(ctx context.Context) int
	CartCount() int
}

// SessionUsecase holds the authentication token and user identity.
type SessionUsecase interface {
	CartMirror

	Login(ctx context.Context, creds service.Credentials) (*LoginOutput, error)
	Register(ctx context.Context, input service.SignUpInput) (*LoginOutput, error)
	Logout(ctx context.Context) *LogoutOutput
	// RestoreSession reloads a persisted token at startup. The user identity
	// is not restored, only the token.
	RestoreSession(ctx context.Context) error
	// Session reports the current session, dropping it once the persisted
	// token is gone.
	Session(ctx context.Context) entity.Session

	ForgotPassword(ctx context.Context, email string) (string, error)
	VerifyResetCode(ctx context.Context, code string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, change service.PasswordChange) error
}
