package ports

import (
	"context"
	"time"

	"pulsecheck/contexts/health-checks/voting-service/domain/entities"
)

type VoteRepository interface {
	// SaveVote upserts by (user, card, session).
	SaveVote(ctx context.Context, vote entities.Vote) error
	// SaveVotes persists a bulk submission as one atomic unit: either every
	// vote commits or none of them do.
	SaveVotes(ctx context.Context, votes []entities.Vote) error
	GetVote(ctx context.Context, voteID string) (entities.Vote, error)
	GetVoteByIdentity(ctx context.Context, userID string, cardID string, sessionID string) (entities.Vote, bool, error)
	ListVotesByUserSession(ctx context.Context, userID string, sessionID string) ([]entities.Vote, error)
	ListVotesByCardSession(ctx context.Context, cardID string, sessionID string) ([]entities.Vote, error)
}

// UserProjection is the read model of a voter resolved from the directory.
type UserProjection struct {
	UserID       string
	Username     string
	Role         string
	TeamID       string
	DepartmentID string
}

type CardProjection struct {
	CardID string
	Name   string
	Active bool
}

type SessionProjection struct {
	SessionID string
	Date      time.Time
	IsActive  bool
}

type MemberDirectory interface {
	GetUser(ctx context.Context, userID string) (UserProjection, error)
}

type CardCatalog interface {
	GetCard(ctx context.Context, cardID string) (CardProjection, error)
}

type SessionDirectory interface {
	GetSession(ctx context.Context, sessionID string) (SessionProjection, error)
	// ActiveSession resolves the most recent active session by date.
	ActiveSession(ctx context.Context) (SessionProjection, bool, error)
	PreviousSession(ctx context.Context, sessionID string) (SessionProjection, bool, error)
}

// SummaryRecomputer triggers synchronous recomputation of the summaries a
// vote write touches. Implemented by the summary engine.
type SummaryRecomputer interface {
	RecomputeForVote(ctx context.Context, teamID string, departmentID string, cardID string, sessionID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
