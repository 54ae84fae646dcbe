package session

import "errors"

var (
	ErrSecretTooShort      = errors.New("session: secret must be at least 32 characters")
	ErrKeyDerivationFailed = errors.New("session: key derivation failed")
	ErrNoSession           = errors.New("session: no session")
	ErrInvalidSession      = errors.New("session: invalid session cookie")
	ErrExpired             = errors.New("session: session expired")
	ErrEncryptionFailed    = errors.New("session: encryption failed")
)
