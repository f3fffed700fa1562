package queries

import (
	"context"
	"log/slog"
	"strings"

	"pulsecheck/contexts/health-checks/session-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/session-service/domain/errors"
	"pulsecheck/contexts/health-checks/session-service/ports"
)

// votingRoles are the roles expected to cast votes. Leadership roles read
// dashboards instead of voting, so completion ignores them.
var votingRoles = []string{"engineer", "team_leader"}

type SessionQueries struct {
	Sessions      ports.SessionRepository
	Cards         ports.CardRepository
	Participation ports.ParticipationSource
	Logger        *slog.Logger
}

func (q SessionQueries) ActiveSession(ctx context.Context) (entities.Session, error) {
	session, found, err := q.Sessions.ActiveSession(ctx)
	if err != nil {
		return entities.Session{}, err
	}
	if !found {
		return entities.Session{}, domainerrors.ErrNoActiveSession
	}
	return session, nil
}

func (q SessionQueries) ListSessions(ctx context.Context) ([]entities.Session, error) {
	return q.Sessions.ListSessions(ctx)
}

func (q SessionQueries) GetSession(ctx context.Context, sessionID string) (entities.Session, error) {
	return q.Sessions.GetSession(ctx, strings.TrimSpace(sessionID))
}

func (q SessionQueries) PreviousSession(ctx context.Context, sessionID string) (entities.Session, bool, error) {
	return q.Sessions.PreviousSession(ctx, strings.TrimSpace(sessionID))
}

func (q SessionQueries) ListActiveCards(ctx context.Context) ([]entities.HealthCheckCard, error) {
	return q.Cards.ListActiveCards(ctx)
}

func (q SessionQueries) GetCard(ctx context.Context, cardID string) (entities.HealthCheckCard, error) {
	return q.Cards.GetCard(ctx, strings.TrimSpace(cardID))
}

// ParticipationRate reports the percentage of eligible users with at least
// one vote in the session. An empty teamID measures the whole organization.
// Zero eligible users yields 0, never a division by zero.
func (q SessionQueries) ParticipationRate(ctx context.Context, sessionID string, teamID string) (float64, error) {
	if strings.TrimSpace(sessionID) == "" {
		return 0, domainerrors.ErrInvalidSessionInput
	}
	eligible, err := q.Participation.CountEligibleUsers(ctx, strings.TrimSpace(teamID), nil)
	if err != nil {
		return 0, err
	}
	if eligible == 0 {
		return 0, nil
	}
	voters, err := q.Participation.CountDistinctVoters(ctx, strings.TrimSpace(sessionID), strings.TrimSpace(teamID))
	if err != nil {
		return 0, err
	}
	return float64(voters) / float64(eligible) * 100, nil
}

// IsComplete reports whether every voting-role user has participated.
func (q SessionQueries) IsComplete(ctx context.Context, sessionID string) (bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return false, domainerrors.ErrInvalidSessionInput
	}
	eligible, err := q.Participation.CountEligibleUsers(ctx, "", votingRoles)
	if err != nil {
		return false, err
	}
	voters, err := q.Participation.CountDistinctVoters(ctx, strings.TrimSpace(sessionID), "")
	if err != nil {
		return false, err
	}
	return eligible == voters, nil
}
