package authz

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisSettingStore persists settings in Redis. Values never expire; the
// permission matrix must survive restarts, so the store relies on Redis
// persistence configuration rather than TTLs.
type RedisSettingStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisStoreOption configures a RedisSettingStore.
type RedisStoreOption func(*RedisSettingStore)

// WithRedisKeyPrefix namespaces all keys, e.g. "shield:" yields
// "shield:authgroups.matrix". Useful when the Redis database is shared.
func WithRedisKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisSettingStore) {
		s.prefix = prefix
	}
}

// NewRedisSettingStore creates a SettingStore backed by the given Redis client.
func NewRedisSettingStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisSettingStore {
	s := &RedisSettingStore{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value stored under key, or ErrSettingNotFound.
func (s *RedisSettingStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set overwrites the value stored under key.
func (s *RedisSettingStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}
