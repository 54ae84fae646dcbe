// Package handler adapts typed request handlers to net/http.
//
// A handler receives a Context (the request context plus the request and
// response writer) and a request struct filled by binders, and returns a
// Response:
//
//	r.Post("/payments", handler.Wrap(record,
//		handler.WithBinders[RecordRequest](binder.JSON(), binder.Form()),
//		handler.WithErrorHandler[RecordRequest](errorHandler),
//	))
//
// Errors are returned with Error(err) and rendered by the ErrorHandler, which
// classifies them: validator.ValidationErrors become 422 with per-field
// messages, HTTPError values keep their status, everything else is a 500.
// Messages are translated into the request language.
//
// DataStar requests get element patches from Templ and signal patches from
// Signals and the error handler; SSE keeps the connection open for pushes.
package handler
