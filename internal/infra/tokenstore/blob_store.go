// Package tokenstore persists the session token, the storefront's only
// durable client-side state.
package tokenstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

type storedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// blobStore keeps the token as one small JSON object in a gocloud bucket.
type blobStore struct {
	bucket *blob.Bucket
	key    string
	now    func() time.Time
	logger *slog.Logger
}

// OpenBlobStore opens the bucket at bucketURL, e.g. file:///var/lib/storefront or mem://.
func OpenBlobStore(ctx context.Context, bucketURL, key string, logger *slog.Logger) (repository.TokenRepository, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return NewBlobStore(bucket, key, logger), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket, key string, logger *slog.Logger) repository.TokenRepository {
	return &blobStore{
		bucket: bucket,
		key:    key,
		now:    time.Now,
		logger: logger,
	}
}

func (s *blobStore) Load(ctx context.Context) (string, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", nil
		}

		return "", errors.Wrap(err, "read token")
	}

	var stored storedToken
	if err := json.Unmarshal(data, &stored); err != nil {
		s.logger.WarnContext(ctx, "Discarding unreadable session token", slog.Any("error", err))

		return "", s.Delete(ctx)
	}

	if !stored.ExpiresAt.IsZero() && !s.now().Before(stored.ExpiresAt) {
		return "", s.Delete(ctx)
	}

	return stored.Token, nil
}

func (s *blobStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	data, err := json.Marshal(storedToken{Token: token, ExpiresAt: s.now().Add(ttl)})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.bucket.WriteAll(ctx, s.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrap(err, "write token")
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context) error {
	if err := s.bucket.Delete(ctx, s.key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete token")
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
