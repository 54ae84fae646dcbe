// Package requestid correlates a browser request with the backend calls it
// triggers through a shared X-Request-ID.
//
// Middleware accepts a well-formed incoming id (letters, digits, '-' and '_',
// at most 128 bytes) or generates a UUIDv4, stores it in the context and
// echoes it back. Propagate sets the same id on outgoing backend requests and
// LoggerExtractor adds it to every log record written with the request context.
//
//	router.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Invalid ids are silently replaced; the package never returns errors.
package requestid
