package cache

import (
	"context"
	"time"
)

// Store is a string-keyed cache shared by catalog lookups. The in-memory
// Memory store and the Redis-backed store in pkg/redis both implement it.
type Store[V any] interface {
	Load(ctx context.Context, key string) (V, bool, error)
	Save(ctx context.Context, key string, value V) error
	Invalidate(ctx context.Context, key string) error
}

// Memory adapts an LRU to the Store interface. It never returns errors.
type Memory[V any] struct {
	lru *LRU[string, V]
}

// NewMemory creates an in-process store.
func NewMemory[V any](capacity int, ttl time.Duration, opts ...Option) *Memory[V] {
	return &Memory[V]{lru: New[string, V](capacity, ttl, opts...)}
}

func (m *Memory[V]) Load(_ context.Context, key string) (V, bool, error) {
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

func (m *Memory[V]) Save(_ context.Context, key string, value V) error {
	m.lru.Put(key, value)
	return nil
}

func (m *Memory[V]) Invalidate(_ context.Context, key string) error {
	m.lru.Remove(key)
	return nil
}

// GetOrLoad returns the cached value for key or calls load and stores its
// result. Load errors are returned as is and nothing is cached.
// A failing store read is treated as a miss.
func GetOrLoad[V any](ctx context.Context, s Store[V], key string, load func(context.Context) (V, error)) (V, error) {
	if v, ok, err := s.Load(ctx, key); err == nil && ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		var zero V
		return zero, err
	}
	_ = s.Save(ctx, key, v)
	return v, nil
}
