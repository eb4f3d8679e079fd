package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Config  *config.Config
	AuthAPI service.AuthAPI
	UserAPI service.UserAPI
	CartAPI service.CartAPI
	Tokens  repository.TokenRepository
	Logger  *slog.Logger
}

// sessionService holds the token, the user and the cart count mirror.
// The lock is never held across a remote call.
type sessionService struct {
	mu        sync.Mutex
	token     string
	user      *entity.User
	cartCount int
	// epoch advances on every session change so cart counts fetched for a
	// previous session are discarded.
	epoch uint64

	authAPI  service.AuthAPI
	userAPI  service.UserAPI
	cartAPI  service.CartAPI
	tokens   repository.TokenRepository
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		authAPI:  params.AuthAPI,
		userAPI:  params.UserAPI,
		cartAPI:  params.CartAPI,
		tokens:   params.Tokens,
		tokenTTL: params.Config.Session.TokenTTL,
		logger:   params.Logger,
	}
}

// AsCartMirror exposes the session store's cart count to other use cases.
func AsCartMirror(session usecase.SessionUsecase) usecase.CartMirror {
	return session
}

// Login signs in and establishes the session. On failure nothing changes.
func (srv *sessionService) Login(ctx context.Context, creds service.Credentials) (*usecase.LoginOutput, error) {
	logger := loggerFor(ctx, srv.logger)
	logger.Info("Attempting login", slog.String("email", creds.Email))

	result, err := srv.authAPI.SignIn(ctx, creds)
	if err != nil {
		logger.Warn("Login failed", slog.String("email", creds.Email), slog.Any("error", err))

		return nil, userFacing(err, domainerrors.ErrInvalidCredentials)
	}

	return srv.establish(ctx, result.Token, result.User)
}

// Register creates the account and logs straight into it.
func (srv *sessionService) Register(ctx context.Context, input service.SignUpInput) (*usecase.LoginOutput, error) {
	logger := loggerFor(ctx, srv.logger)
	logger.Info("Attempting registration", slog.String("email", input.Email))

	result, err := srv.authAPI.SignUp(ctx, input)
	if err != nil {
		logger.Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, userFacing(err, domainerrors.ErrRegistrationFailed)
	}

	return srv.establish(ctx, result.Token, result.User)
}

// establish persists the token, publishes the session and refreshes the cart count.
func (srv *sessionService) establish(ctx context.Context, token string, user *entity.User) (*usecase.LoginOutput, error) {
	if err := srv.tokens.Save(ctx, token, srv.tokenTTL); err != nil {
		return nil, errors.Wrap(err, "failed to persist session token")
	}

	srv.mu.Lock()
	srv.token = token
	srv.user = user
	srv.cartCount = 0
	srv.epoch++
	srv.mu.Unlock()

	count := srv.RefreshCartCount(ctx)

	loggerFor(ctx, srv.logger).Info("Session established", slog.Int("cart_count", count))

	return &usecase.LoginOutput{
		Session:   srv.Session(ctx),
		CartCount: count,
		Redirect:  usecase.RedirectHome,
	}, nil
}

// Logout always succeeds locally. The token store revokes the token even
// when it cannot remove it.
func (srv *sessionService) Logout(ctx context.Context) *usecase.LogoutOutput {
	if err := srv.tokens.Delete(ctx); err != nil {
		loggerFor(ctx, srv.logger).Error("Failed to delete persisted token", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.clearLocked()
	srv.mu.Unlock()

	loggerFor(ctx, srv.logger).Info("Logged out")

	return &usecase.LogoutOutput{Redirect: usecase.RedirectLogin}
}

// RestoreSession reads the persisted token once at startup.
func (srv *sessionService) RestoreSession(ctx context.Context) error {
	token, err := srv.tokens.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load persisted token")
	}

	if token == "" {
		srv.logger.Info("No persisted session")

		return nil
	}

	srv.mu.Lock()
	srv.token = token
	srv.epoch++
	srv.mu.Unlock()

	count := srv.RefreshCartCount(ctx)
	srv.logger.Info("Session restored", slog.Int("cart_count", count))

	return nil
}

// Session returns a snapshot of the current session. The persisted token is
// authoritative: once it has expired or been revoked the session is dropped.
func (srv *sessionService) Session(ctx context.Context) entity.Session {
	srv.mu.Lock()
	epoch := srv.epoch
	srv.mu.Unlock()

	token, err := srv.tokens.Load(ctx)
	if err != nil {
		loggerFor(ctx, srv.logger).Warn("Failed to read persisted token", slog.Any("error", err))
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err == nil && token == "" && srv.token != "" && epoch == srv.epoch {
		srv.clearLocked()
	}

	session := entity.Session{Token: srv.token}
	if srv.user != nil {
		user := *srv.user
		session.User = &user
	}

	return session
}

func (srv *sessionService) clearLocked() {
	srv.token = ""
	srv.user = nil
	srv.cartCount = 0
	srv.epoch++
}

// RefreshCartCount re-fetches the cart count from the server.
func (srv *sessionService) RefreshCartCount(ctx context.Context) int {
	logger := loggerFor(ctx, srv.logger)

	srv.mu.Lock()
	epoch := srv.epoch
	srv.mu.Unlock()

	token, err := srv.tokens.Load(ctx)
	if err != nil {
		logger.Warn("Failed to read token for cart count", slog.Any("error", err))

		return srv.CartCount()
	}

	if token == "" {
		srv.mu.Lock()
		if epoch == srv.epoch {
			srv.clearLocked()
		}
		srv.mu.Unlock()

		return 0
	}

	view, err := srv.cartAPI.GetCart(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err != nil {
		logger.Warn("Failed to fetch cart count", slog.Any("error", err))

		return srv.cartCount
	}

	if epoch != srv.epoch {
		logger.Debug("Discarding cart count for a previous session")

		return srv.cartCount
	}

	srv.cartCount = view.ItemCount

	return srv.cartCount
}

// CartCount returns the last fetched count.
func (srv *sessionService) CartCount() int {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.cartCount
}

// ForgotPassword asks the server to email a reset code.
func (srv *sessionService) ForgotPassword(ctx context.Context, email string) (string, error) {
	message, err := srv.authAPI.ForgotPassword(ctx, email)
	if err != nil {
		loggerFor(ctx, srv.logger).Warn("Forgot password failed", slog.String("email", email), slog.Any("error", err))

		return "", userFacing(err, domainerrors.ErrPasswordResetFailed)
	}

	return message, nil
}

// VerifyResetCode checks the emailed code.
func (srv *sessionService) VerifyResetCode(ctx context.Context, code string) error {
	if err := srv.authAPI.VerifyResetCode(ctx, code); err != nil {
		loggerFor(ctx, srv.logger).Warn("Reset code rejected", slog.Any("error", err))

		return userFacing(err, domainerrors.ErrPasswordResetFailed)
	}

	return nil
}

// ResetPassword sets the new password and logs into the account with the
// token the server issues. The server returns no user, so a placeholder is used.
func (srv *sessionService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) (*usecase.LoginOutput, error) {
	token, err := srv.authAPI.ResetPassword(ctx, input.Email, input.NewPassword)
	if err != nil {
		loggerFor(ctx, srv.logger).Warn("Password reset failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, userFacing(err, domainerrors.ErrPasswordResetFailed)
	}

	return srv.establish(ctx, token, &entity.User{
		Name:  "User",
		Email: input.Email,
		Role:  entity.RoleUser,
	})
}

// ChangePassword updates the password. A replacement token, when issued,
// supersedes the stored one.
func (srv *sessionService) ChangePassword(ctx context.Context, change service.PasswordChange) error {
	token, err := srv.userAPI.ChangePassword(ctx, change)
	if err != nil {
		loggerFor(ctx, srv.logger).Warn("Password change failed", slog.Any("error", err))

		return userFacing(err, domainerrors.ErrPasswordResetFailed)
	}

	if token == "" {
		return nil
	}

	if err := srv.tokens.Save(ctx, token, srv.tokenTTL); err != nil {
		return errors.Wrap(err, "failed to persist replacement token")
	}

	srv.mu.Lock()
	srv.token = token
	srv.mu.Unlock()

	return nil
}
