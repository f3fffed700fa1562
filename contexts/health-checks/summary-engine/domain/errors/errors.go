package errors

import "errors"

var (
	ErrInvalidScope     = errors.New("invalid summary scope")
	ErrSummaryNotFound  = errors.New("summary not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSummaryPersist   = errors.New("summary could not be persisted")
	ErrInvalidSummaryID = errors.New("invalid summary identifiers")
)
