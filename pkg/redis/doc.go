// Package redis connects to an optional Redis server and exposes a shared,
// JSON encoded cache store on top of github.com/redis/go-redis/v9.
//
// Redis is opt-in: when REDIS_URL is empty Connect returns
// ErrEmptyConnectionURL and callers keep their in-process caches.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	camps := redis.NewStore[campapi.Camp](client, cfg.KeyPrefix+"camp:", 5*time.Minute)
//
// Healthcheck returns a probe for the HTTP health endpoint.
package redis
