package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps JSON encoded values in Redis so that several instances share
// one catalog cache. It satisfies cache.Store.
type Store[V any] struct {
	db     redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewStore creates a store. Keys are prefixed with prefix and expire after
// ttl; a ttl of zero keeps them until invalidated.
func NewStore[V any](client redis.UniversalClient, prefix string, ttl time.Duration) *Store[V] {
	return &Store[V]{db: client, prefix: prefix, ttl: ttl}
}

// Load returns false without error for missing keys.
func (s *Store[V]) Load(ctx context.Context, key string) (V, bool, error) {
	var v V
	data, err := s.db.Get(ctx, s.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil
	}
	if err != nil {
		return v, false, errors.Join(ErrStoreFailure, err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, false, errors.Join(ErrStoreFailure, err)
	}
	return v, true, nil
}

func (s *Store[V]) Save(ctx context.Context, key string, value V) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	if err := s.db.Set(ctx, s.Key(key), data, s.ttl).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

func (s *Store[V]) Invalidate(ctx context.Context, key string) error {
	if err := s.db.Del(ctx, s.Key(key)).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

// Key returns the namespaced Redis key.
func (s *Store[V]) Key(key string) string {
	return s.prefix + key
}
