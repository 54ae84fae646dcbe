package handler

import (
	"errors"
	"net/http"
)

// HTTPError is an error carrying an HTTP status code and the translation key
// of the message shown to the user.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// WithKey returns a copy of the error with another translation key.
func (e HTTPError) WithKey(key string) HTTPError {
	e.Key = key
	return e
}

// Predefined HTTP errors keyed to the errors.* catalogue entries.
var (
	ErrBadRequest   = HTTPError{Code: http.StatusBadRequest, Key: "errors.invalid_data"}
	ErrUnauthorized = HTTPError{Code: http.StatusUnauthorized, Key: "errors.unauthorized"}
	ErrForbidden    = HTTPError{Code: http.StatusForbidden, Key: "errors.forbidden"}
	ErrNotFound     = HTTPError{Code: http.StatusNotFound, Key: "errors.not_found"}
	ErrConflict     = HTTPError{Code: http.StatusConflict, Key: "errors.duplicate"}
	ErrTooMany      = HTTPError{Code: http.StatusTooManyRequests, Key: "errors.too_many_attempts"}
	ErrBadGateway   = HTTPError{Code: http.StatusBadGateway, Key: "errors.backend"}
	ErrInternal     = HTTPError{Code: http.StatusInternalServerError, Key: "errors.internal"}
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrNotDataStar indicates an SSE endpoint was called without a DataStar connection
	ErrNotDataStar = errors.New("SSE endpoint requires DataStar connection")
)
