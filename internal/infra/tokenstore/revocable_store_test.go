package tokenstore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stuckStore refuses deletes and, optionally, writes.
type stuckStore struct {
	repository.TokenRepository
	failSaves bool
}

func (s *stuckStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	if s.failSaves {
		return errors.New("read-only store")
	}

	return s.TokenRepository.Save(ctx, token, ttl)
}

func (s *stuckStore) Delete(context.Context) error {
	return errors.New("permission denied")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRevocableStore_FailedDeleteStillRevokes(t *testing.T) {
	inner := newTestBlobStore(t)
	store := NewRevocableStore(&stuckStore{TokenRepository: inner}, discardLogger())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", time.Hour))
	require.Error(t, store.Delete(ctx))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	// The backing store was blanked, so a restarted process sees no token either.
	persisted, err := inner.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestRevocableStore_RevokedWhenStoreIsReadOnly(t *testing.T) {
	inner := newTestBlobStore(t)
	ctx := context.Background()
	require.NoError(t, inner.Save(ctx, "tok-1", time.Hour))

	store := NewRevocableStore(&stuckStore{TokenRepository: inner, failSaves: true}, discardLogger())

	require.Error(t, store.Delete(ctx))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestRevocableStore_SaveAfterRevokeRestoresReads(t *testing.T) {
	store := NewRevocableStore(&stuckStore{TokenRepository: newTestBlobStore(t)}, discardLogger())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", time.Hour))
	require.Error(t, store.Delete(ctx))
	require.NoError(t, store.Save(ctx, "tok-2", time.Hour))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestRevocableStore_PassesThroughOnSuccess(t *testing.T) {
	store := NewRevocableStore(newTestBlobStore(t), discardLogger())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", time.Hour))
	require.NoError(t, store.Delete(ctx))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
