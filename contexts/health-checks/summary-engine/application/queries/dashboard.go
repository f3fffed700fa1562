package queries

import (
	"context"
	"log/slog"
	"strings"

	"pulsecheck/contexts/health-checks/summary-engine/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/summary-engine/domain/errors"
	"pulsecheck/contexts/health-checks/summary-engine/ports"
)

// DashboardUseCase serves the read side of the summary engine: per-scope
// dashboards, the rolled-up team health status, and raw card distributions.
type DashboardUseCase struct {
	Summaries ports.SummaryRepository
	Votes     ports.VoteSource
	Logger    *slog.Logger
}

func (uc DashboardUseCase) TeamDashboard(ctx context.Context, teamID string, sessionID string) ([]entities.Summary, error) {
	if strings.TrimSpace(teamID) == "" || strings.TrimSpace(sessionID) == "" {
		return nil, domainerrors.ErrInvalidSummaryID
	}
	return uc.Summaries.ListSummaries(ctx, entities.ScopeTeam, strings.TrimSpace(teamID), strings.TrimSpace(sessionID))
}

func (uc DashboardUseCase) DepartmentDashboard(ctx context.Context, departmentID string, sessionID string) ([]entities.Summary, error) {
	if strings.TrimSpace(departmentID) == "" || strings.TrimSpace(sessionID) == "" {
		return nil, domainerrors.ErrInvalidSummaryID
	}
	return uc.Summaries.ListSummaries(ctx, entities.ScopeDepartment, strings.TrimSpace(departmentID), strings.TrimSpace(sessionID))
}

// TeamHealthStatus rolls a team's per-card average votes into one overall
// color. Red or amber win only with a strict plurality of cards; any
// remaining green card keeps the team green. No summaries means no data.
func (uc DashboardUseCase) TeamHealthStatus(ctx context.Context, teamID string, sessionID string) (entities.VoteValue, error) {
	summaries, err := uc.TeamDashboard(ctx, teamID, sessionID)
	if err != nil {
		return entities.VoteNoData, err
	}

	var green, amber, red int
	for _, summary := range summaries {
		switch summary.AverageVote {
		case entities.VoteGreen:
			green++
		case entities.VoteAmber:
			amber++
		case entities.VoteRed:
			red++
		}
	}
	switch {
	case red > amber && red > green:
		return entities.VoteRed, nil
	case amber > red && amber > green:
		return entities.VoteAmber, nil
	case green > 0:
		return entities.VoteGreen, nil
	default:
		return entities.VoteNoData, nil
	}
}

// CardDistribution pools every vote for a card in a session across the whole
// organization.
func (uc DashboardUseCase) CardDistribution(ctx context.Context, cardID string, sessionID string) (entities.Distribution, error) {
	if strings.TrimSpace(cardID) == "" || strings.TrimSpace(sessionID) == "" {
		return entities.Distribution{}, domainerrors.ErrInvalidSummaryID
	}
	votes, err := uc.Votes.ListVotesForCard(ctx, strings.TrimSpace(cardID), strings.TrimSpace(sessionID))
	if err != nil {
		return entities.Distribution{}, err
	}
	values := make([]entities.VoteValue, 0, len(votes))
	for _, vote := range votes {
		values = append(values, entities.VoteValue(strings.TrimSpace(vote.Value)))
	}
	return entities.ComputeDistribution(values), nil
}
