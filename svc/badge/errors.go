package badge

import "errors"

var (
	ErrParticipantNotFound = errors.New("badge: participant not found")
	ErrInvalidCode         = errors.New("badge: invalid participant code")
	ErrBackend             = errors.New("badge: backend failure")
)
