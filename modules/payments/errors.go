package payments

import (
	"errors"

	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/svc/payment"
)

var ErrParticipantNotFound = handler.ErrNotFound.WithKey("errors.participant_not_found")

func httpError(err error) error {
	switch {
	case errors.Is(err, payment.ErrParticipantNotFound):
		return errors.Join(ErrParticipantNotFound, err)
	case errors.Is(err, payment.ErrInvalidData):
		return errors.Join(handler.ErrBadRequest, err)
	case errors.Is(err, payment.ErrForbidden), errors.Is(err, campapi.ErrForbidden):
		return errors.Join(handler.ErrForbidden, err)
	case errors.Is(err, campapi.ErrUnauthorized):
		return errors.Join(handler.ErrUnauthorized, err)
	case errors.Is(err, payment.ErrBackend):
		return errors.Join(handler.ErrBadGateway, err)
	}
	return err
}
