// Package campapi is the client of the camp backend REST API.
//
// Every call takes a context carrying the bearer token of the signed-in user
// (WithToken) and propagates the request id as X-Request-ID:
//
//	client, err := campapi.New(cfg)
//	ctx = campapi.WithToken(ctx, sess.Token)
//	camp, err := client.GetCamp(ctx, 7)
//
// Backend statuses map to sentinel errors: 400 ErrInvalidData, 401
// ErrUnauthorized, 403 ErrForbidden, 404 ErrNotFound, 409 ErrDuplicate.
// Anything else is an *APIError.
//
// Camp payloads are normalised into Camp whatever key spelling the backend
// used. CachedCatalog memoises camps and the location tree in cache stores.
package campapi
