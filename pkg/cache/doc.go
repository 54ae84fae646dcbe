// Package cache provides a generic, thread-safe LRU cache with per-entry
// expiry, and the Store contract used to memoise backend lookups.
//
// The LRU evicts the least recently used entry once it reaches capacity;
// independently, entries older than the configured TTL are treated as missing
// and dropped on access.
//
//	c := cache.New[int, Camp](64, 5*time.Minute)
//	c.Put(camp.ID, camp)
//	camp, ok := c.Get(42)
//
// Store abstracts where cached values live so the same lookup code runs with
// an in-process Memory store or a shared Redis store:
//
//	var store cache.Store[Camp] = cache.NewMemory[Camp](64, time.Minute)
//	camp, err := cache.GetOrLoad(ctx, store, "camp:42", func(ctx context.Context) (Camp, error) {
//		return client.GetCamp(ctx, 42)
//	})
package cache
