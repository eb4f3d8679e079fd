// Package impl contains the storefront's state stores and use case implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

// loggerFor returns a request-scoped logger if available, otherwise the fallback.
func loggerFor(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// userFacing turns an upstream failure into the operation's own error,
// carrying the server's message when it sent one. Transport failures become
// the generic unavailable error; anything else passes through.
func userFacing(err error, base *domainerrors.BaseError) error {
	var upErr *domainerrors.UpstreamError
	if !errors.As(err, &upErr) {
		return errors.WithStack(err)
	}

	if upErr.Kind == domainerrors.UpstreamTransport {
		return errors.WithStack(domainerrors.ErrUpstreamUnavailable.WithDetails(upErr.Endpoint))
	}

	return errors.WithStack(base.WithMessage(upErr.Msg).WithDetails(upErr.Endpoint))
}
