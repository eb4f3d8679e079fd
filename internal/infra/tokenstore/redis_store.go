package tokenstore

import (
	"context"
	"time"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore keeps the token under one key with a native TTL.
type redisStore struct {
	client *redis.Client
	key    string
}

// OpenRedisStore connects to redisURL and checks the connection.
func OpenRedisStore(ctx context.Context, redisURL, key string) (repository.TokenRepository, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis URL")
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "failed to connect to Redis")
	}

	return NewRedisStore(client, key), nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, key string) repository.TokenRepository {
	return &redisStore{client: client, key: key}
}

func (s *redisStore) Load(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "get token")
	}

	return token, nil
}

func (s *redisStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	return errors.Wrap(s.client.Set(ctx, s.key, token, ttl).Err(), "set token")
}

func (s *redisStore) Delete(ctx context.Context) error {
	return errors.Wrap(s.client.Del(ctx, s.key).Err(), "delete token")
}

func (s *redisStore) Close() error {
	return errors.WithStack(s.client.Close())
}
