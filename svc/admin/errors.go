package admin

import "errors"

var (
	ErrInvalidKind    = errors.New("admin: unknown location kind")
	ErrParentNotFound = errors.New("admin: parent location not found")
	ErrDuplicate      = errors.New("admin: already exists")
	ErrNotFound       = errors.New("admin: not found")
	ErrInvalidRole    = errors.New("admin: role must be leader or treasurer")
	ErrInvalidData    = errors.New("admin: invalid data")
	ErrBackend        = errors.New("admin: backend failure")
)
