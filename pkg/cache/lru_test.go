package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/pkg/cache"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
}

func TestLRU_Basic(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		c := cache.New[string, int](3, 0)

		c.Put("a", 1)
		c.Put("b", 2)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("get non-existent", func(t *testing.T) {
		c := cache.New[string, int](3, 0)

		val, ok := c.Get("missing")
		assert.False(t, ok)
		assert.Equal(t, 0, val)
	})

	t.Run("update existing", func(t *testing.T) {
		c := cache.New[string, int](3, 0)

		c.Put("a", 1)
		oldVal, existed := c.Put("a", 2)
		assert.True(t, existed)
		assert.Equal(t, 1, oldVal)

		val, _ := c.Get("a")
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("non-positive capacity panics", func(t *testing.T) {
		assert.Panics(t, func() { cache.New[string, int](0, 0) })
	})
}

func TestLRU_Eviction(t *testing.T) {
	c := cache.New[string, int](2, 0)

	var evicted []string
	c.SetEvictCallback(func(key string, _ int) { evicted = append(evicted, key) })

	c.Put("a", 1)
	c.Put("b", 2)
	c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"b"}, evicted)
}

func TestLRU_TTL(t *testing.T) {
	t.Run("entry expires", func(t *testing.T) {
		clock := newClock()
		c := cache.New[string, int](3, time.Minute, cache.WithClock(clock.Now))

		c.Put("a", 1)
		clock.Advance(59 * time.Second)
		_, ok := c.Get("a")
		assert.True(t, ok)

		clock.Advance(time.Second)
		_, ok = c.Get("a")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("put restarts the ttl", func(t *testing.T) {
		clock := newClock()
		c := cache.New[string, int](3, time.Minute, cache.WithClock(clock.Now))

		c.Put("a", 1)
		clock.Advance(50 * time.Second)
		c.Put("a", 2)
		clock.Advance(50 * time.Second)

		val, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, val)
	})

	t.Run("overwriting an expired entry reports no previous value", func(t *testing.T) {
		clock := newClock()
		c := cache.New[string, int](3, time.Minute, cache.WithClock(clock.Now))

		c.Put("a", 1)
		clock.Advance(2 * time.Minute)
		_, existed := c.Put("a", 2)
		assert.False(t, existed)
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		clock := newClock()
		c := cache.New[string, int](3, 0, cache.WithClock(clock.Now))

		c.Put("a", 1)
		clock.Advance(24 * time.Hour)
		_, ok := c.Get("a")
		assert.True(t, ok)
	})
}

func TestLRU_RemoveAndClear(t *testing.T) {
	c := cache.New[string, int](3, 0)
	c.Put("a", 1)
	c.Put("b", 2)

	val, ok := c.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	_, ok = c.Remove("a")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestLRU_Concurrent(t *testing.T) {
	c := cache.New[int, int](100, time.Minute)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				c.Put(n*100+j, j)
				c.Get(n*100 + j)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 100)
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("loads once then serves from cache", func(t *testing.T) {
		store := cache.NewMemory[string](10, time.Minute)
		calls := 0
		load := func(context.Context) (string, error) {
			calls++
			return "Camp Ado", nil
		}

		v, err := cache.GetOrLoad(ctx, store, "camp:1", load)
		require.NoError(t, err)
		assert.Equal(t, "Camp Ado", v)

		v, err = cache.GetOrLoad(ctx, store, "camp:1", load)
		require.NoError(t, err)
		assert.Equal(t, "Camp Ado", v)
		assert.Equal(t, 1, calls)
	})

	t.Run("load errors are not cached", func(t *testing.T) {
		store := cache.NewMemory[string](10, time.Minute)
		boom := errors.New("boom")

		_, err := cache.GetOrLoad(ctx, store, "k", func(context.Context) (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)

		_, ok, err := store.Load(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalidate forces a reload", func(t *testing.T) {
		store := cache.NewMemory[int](10, time.Minute)
		require.NoError(t, store.Save(ctx, "k", 1))
		require.NoError(t, store.Invalidate(ctx, "k"))

		v, err := cache.GetOrLoad(ctx, store, "k", func(context.Context) (int, error) { return 2, nil })
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	})
}
