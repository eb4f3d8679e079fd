package tokenstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// revocableStore keeps a logout effective when the backing store cannot
// remove the token. A failed delete overwrites the token with an empty one
// and, until the next successful save, Load reports no token.
type revocableStore struct {
	mu      sync.Mutex
	revoked bool

	store  repository.TokenRepository
	logger *slog.Logger
}

// NewRevocableStore wraps store so that Delete always revokes the token
// for this process, even when the store refuses the delete.
func NewRevocableStore(store repository.TokenRepository, logger *slog.Logger) repository.TokenRepository {
	return &revocableStore{
		store:  store,
		logger: logger,
	}
}

func (s *revocableStore) Load(ctx context.Context) (string, error) {
	s.mu.Lock()
	revoked := s.revoked
	s.mu.Unlock()

	if revoked {
		return "", nil
	}

	return s.store.Load(ctx)
}

func (s *revocableStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.store.Save(ctx, token, ttl); err != nil {
		return err
	}

	s.mu.Lock()
	s.revoked = false
	s.mu.Unlock()

	return nil
}

func (s *revocableStore) Delete(ctx context.Context) error {
	err := s.store.Delete(ctx)

	s.mu.Lock()
	s.revoked = err != nil
	s.mu.Unlock()

	if err == nil {
		return nil
	}

	if blankErr := s.store.Save(ctx, "", 0); blankErr != nil {
		s.logger.WarnContext(ctx, "Failed to blank session token", slog.Any("error", blankErr))
	}

	return errors.Wrap(err, "token revoked in memory only")
}

func (s *revocableStore) Close() error {
	return s.store.Close()
}
