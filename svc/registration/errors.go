package registration

import "errors"

var (
	ErrCampNotFound      = errors.New("registration: camp not found")
	ErrAlreadyRegistered = errors.New("registration: participant already registered")
	ErrInvalidData       = errors.New("registration: invalid data")
	// ErrSelectionStale is joined with a *location.StaleError naming the level
	// that no longer exists in the reloaded tree.
	ErrSelectionStale = errors.New("registration: location selection is stale")
	ErrBackend        = errors.New("registration: backend failure")
)
