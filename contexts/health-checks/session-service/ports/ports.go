package ports

import (
	"context"
	"time"

	"pulsecheck/contexts/health-checks/session-service/domain/entities"
)

type SessionRepository interface {
	SaveSession(ctx context.Context, session entities.Session) error
	GetSession(ctx context.Context, sessionID string) (entities.Session, error)
	// ListSessions returns sessions newest first.
	ListSessions(ctx context.Context) ([]entities.Session, error)
	ActiveSession(ctx context.Context) (entities.Session, bool, error)
	PreviousSession(ctx context.Context, sessionID string) (entities.Session, bool, error)
}

type CardRepository interface {
	GetCard(ctx context.Context, cardID string) (entities.HealthCheckCard, error)
	// ListActiveCards returns active cards in display order.
	ListActiveCards(ctx context.Context) ([]entities.HealthCheckCard, error)
}

// ParticipationSource answers who voted and who was eligible. Vote and user
// counts live in other contexts, so this is a cross-context read port.
type ParticipationSource interface {
	// CountDistinctVoters counts users with at least one vote in the
	// session, optionally restricted to one team.
	CountDistinctVoters(ctx context.Context, sessionID string, teamID string) (int, error)
	// CountEligibleUsers counts users expected to vote, optionally
	// restricted to one team or to a role set.
	CountEligibleUsers(ctx context.Context, teamID string, roles []string) (int, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
