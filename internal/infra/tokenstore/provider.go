package tokenstore

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the TokenRepository, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenRepository opens the configured token store
func NewTokenRepository(params StoreParams) (repository.TokenRepository, error) {
	cfg := params.Config.Session
	logger := params.Logger

	var (
		store repository.TokenRepository
		err   error
	)

	switch cfg.Store {
	case config.TokenStoreBlob:
		logger.Info("Using blob token store", slog.String("url", cfg.BlobURL))

		store, err = OpenBlobStore(params.Ctx, cfg.BlobURL, cfg.Key, logger)
	case config.TokenStoreRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("redis URL is required for redis token store")
		}
		logger.Info("Using redis token store")

		store, err = OpenRedisStore(params.Ctx, cfg.RedisURL, cfg.Key)
	default:
		return nil, errors.Errorf("unknown token store: %s", cfg.Store)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing token store")

			return store.Close()
		},
	})

	return NewRevocableStore(store, logger), nil
}

// Module provides the token store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenRepository),
)
