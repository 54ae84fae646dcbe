package payment

import "errors"

var (
	ErrParticipantNotFound = errors.New("payment: participant not found")
	ErrInvalidData         = errors.New("payment: invalid data")
	ErrForbidden           = errors.New("payment: not allowed to record payments")
	ErrBackend             = errors.New("payment: backend failure")
)
