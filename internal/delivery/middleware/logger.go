package middleware

import (
	"log/slog"

	"storefront/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogger returns the access log middleware. Bodies are logged in
// debug mode only.
func NewAccessLogger(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestBody:  cfg.Env.Debug,
		WithResponseBody: cfg.Env.Debug,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/health"),
		},
	})
}
