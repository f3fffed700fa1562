package ports

import (
	"context"
	"time"

	"pulsecheck/contexts/health-checks/summary-engine/domain/entities"
)

// VoteProjection is the cross-context read model of a vote. The summary
// engine never mutates votes; it only pools them per scope.
type VoteProjection struct {
	VoteID       string
	UserID       string
	TeamID       string
	DepartmentID string
	CardID       string
	SessionID    string
	Value        string
}

// SessionProjection carries the session ordering data trend comparison needs.
type SessionProjection struct {
	SessionID string
	Date      time.Time
	IsActive  bool
}

type SummaryRepository interface {
	SaveSummary(ctx context.Context, summary entities.Summary) error
	GetSummary(
		ctx context.Context,
		scope entities.ScopeType,
		scopeID string,
		cardID string,
		sessionID string,
	) (entities.Summary, bool, error)
	ListSummaries(
		ctx context.Context,
		scope entities.ScopeType,
		scopeID string,
		sessionID string,
	) ([]entities.Summary, error)
}

type VoteSource interface {
	ListVotesForTeam(ctx context.Context, teamID string, cardID string, sessionID string) ([]VoteProjection, error)
	ListVotesForDepartment(ctx context.Context, departmentID string, cardID string, sessionID string) ([]VoteProjection, error)
	ListVotesForCard(ctx context.Context, cardID string, sessionID string) ([]VoteProjection, error)
}

type SessionDirectory interface {
	GetSession(ctx context.Context, sessionID string) (SessionProjection, error)
	// PreviousSession resolves the session immediately before the given one
	// by date, regardless of active flag.
	PreviousSession(ctx context.Context, sessionID string) (SessionProjection, bool, error)
}

type Clock interface {
	Now() time.Time
}
