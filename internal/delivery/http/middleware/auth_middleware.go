package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// KeyClaims is where SessionMiddleware leaves the decoded token claims.
const KeyClaims = "claims"

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Tokens  repository.TokenRepository
	Decoder service.TokenDecoder
	Logger  *slog.Logger
}

// SessionMiddleware gates routes on the presence of a session token. Only
// presence is checked; validity is for the upstream API to decide.
type SessionMiddleware struct {
	tokens  repository.TokenRepository
	decoder service.TokenDecoder
	logger  *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:  params.Tokens,
		decoder: params.Decoder,
		logger:  params.Logger,
	}
}

// RequireSession answers 401 with a login redirect when no token is held.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		token, err := m.tokens.Load(ctx)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Failed to read session token", slog.Any("error", err))

			return err
		}

		if token == "" {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthenticated.ErrorCode(),
				domainerrors.ErrUnauthenticated.Message(),
				usecase.RedirectLogin,
			)
		}

		// Claims are best effort; an unreadable token still reaches upstream.
		if claims, err := m.decoder.Decode(token); err == nil {
			c.Set(KeyClaims, claims)
		}

		return next(c)
	}
}

// RequireRole must follow RequireSession. The role is read from the token
// claims and is advisory; the upstream API enforces it.
func (m *SessionMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(KeyClaims).(*service.Claims)
			if !ok || entity.Role(claims.Role) != role {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
			}

			return next(c)
		}
	}
}
