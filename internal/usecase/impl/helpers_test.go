package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/tokenstore"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// newTestBucket returns an in-memory bucket that outlives the stores opened
// over it, so a store can be reopened as if the process restarted.
func newTestBucket(t *testing.T) *blob.Bucket {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return bucket
}

func newTestTokens(t *testing.T) repository.TokenRepository {
	t.Helper()

	return tokenstore.NewBlobStore(newTestBucket(t), "token", testLogger())
}

func saveToken(t *testing.T, tokens repository.TokenRepository, token string) {
	t.Helper()

	require.NoError(t, tokens.Save(context.Background(), token, time.Hour))
}

// fakeMirror counts refreshes and returns a fixed count.
type fakeMirror struct {
	mu        sync.Mutex
	count     int
	refreshes int
}

func (m *fakeMirror) RefreshCartCount(context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshes++

	return m.count
}

func (m *fakeMirror) CartCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.count
}

func (m *fakeMirror) Refreshes() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.refreshes
}
