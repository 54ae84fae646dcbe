package campapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidConfig = errors.New("campapi: invalid configuration")
	ErrTransport     = errors.New("campapi: request failed")
	ErrDecode        = errors.New("campapi: invalid response payload")

	// Status errors returned for the backend statuses the application handles.
	ErrInvalidData  = errors.New("campapi: invalid data")
	ErrUnauthorized = errors.New("campapi: unauthorized")
	ErrForbidden    = errors.New("campapi: forbidden")
	ErrNotFound     = errors.New("campapi: not found")
	ErrDuplicate    = errors.New("campapi: duplicate")
)

// APIError is a backend failure with a status outside the mapped set.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("campapi: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("campapi: unexpected status %d: %s", e.Status, e.Message)
}

// statusError maps a non-2xx status to an error. The backend message, when
// present, is kept for logs.
func statusError(status int, message string) error {
	var sentinel error
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		sentinel = ErrInvalidData
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrDuplicate
	default:
		return &APIError{Status: status, Message: message}
	}
	if message == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}
