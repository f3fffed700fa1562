package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidVoteInput = errors.New("invalid vote input")
	ErrVoteNotFound     = errors.New("vote not found")
	ErrNoActiveSession  = errors.New("no active voting session")
	ErrSessionClosed    = errors.New("voting session is closed")
	ErrSessionNotFound  = errors.New("session not found")
	ErrCardNotFound     = errors.New("health check card not found")
	ErrCardInactive     = errors.New("health check card is inactive")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserHasNoTeam    = errors.New("user is not assigned to a team")

	// ErrSummaryRecompute marks a vote write whose summary could not be
	// persisted. The write is not considered successful; callers may retry
	// because recomputation is idempotent.
	ErrSummaryRecompute = errors.New("summary recomputation failed")
)

// CardFailure identifies one invalid card in a bulk submission.
type CardFailure struct {
	CardID string
	Field  string
	Reason string
}

// BulkValidationError enumerates every invalid card in a bulk submission,
// never just the first. The whole submission is rejected when it is returned.
type BulkValidationError struct {
	Failures []CardFailure
}

func (e *BulkValidationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %s %s", failure.CardID, failure.Field, failure.Reason))
	}
	return "bulk vote validation failed: " + strings.Join(parts, "; ")
}

func (e *BulkValidationError) Unwrap() error {
	return ErrInvalidVoteInput
}
