package registration

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/location"
	"github.com/dmitrymomot/campkit/svc/registration"
)

var (
	ErrCampNotFound      = handler.ErrNotFound.WithKey("errors.camp_not_found")
	ErrAlreadyRegistered = handler.ErrConflict.WithKey("errors.already_registered")
	ErrSelectionStale    = handler.HTTPError{Code: http.StatusConflict, Key: "errors.selection_stale"}
)

// httpError attaches the HTTP status of a registration failure. Validation
// errors pass through unchanged.
func httpError(err error) error {
	switch {
	case errors.Is(err, registration.ErrCampNotFound):
		return errors.Join(ErrCampNotFound, err)
	case errors.Is(err, registration.ErrAlreadyRegistered):
		return errors.Join(ErrAlreadyRegistered, err)
	case errors.Is(err, registration.ErrSelectionStale):
		return errors.Join(ErrSelectionStale, err)
	case errors.Is(err, registration.ErrInvalidData), errors.Is(err, location.ErrUnknownAction):
		return errors.Join(handler.ErrBadRequest, err)
	case errors.Is(err, campapi.ErrUnauthorized):
		return errors.Join(handler.ErrUnauthorized, err)
	case errors.Is(err, campapi.ErrForbidden):
		return errors.Join(handler.ErrForbidden, err)
	case errors.Is(err, registration.ErrBackend):
		return errors.Join(handler.ErrBadGateway, err)
	}
	return err
}
