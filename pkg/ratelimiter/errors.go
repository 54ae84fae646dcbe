package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates a non-positive capacity, rate or interval.
	ErrInvalidConfig = errors.New("invalid rate limiter configuration")

	// ErrInvalidTokenCount indicates a non-positive token request.
	ErrInvalidTokenCount = errors.New("invalid token count")
)
