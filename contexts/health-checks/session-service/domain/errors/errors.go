package errors

import "errors"

var (
	ErrInvalidSessionInput = errors.New("invalid session input")
	ErrSessionNotFound     = errors.New("session not found")
	ErrNoActiveSession     = errors.New("no active voting session")
	ErrCardNotFound        = errors.New("health check card not found")
)
