package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "pulsecheck/contexts/health-checks/summary-engine/application"
	"pulsecheck/contexts/health-checks/summary-engine/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/summary-engine/domain/errors"
	"pulsecheck/contexts/health-checks/summary-engine/ports"
)

// RecomputeUseCase rebuilds persisted summaries from raw votes. Every
// recompute is a full recalculation over the scope's vote set for the
// session; there is no incremental update path, which keeps the persisted
// summary reproducible and the operation idempotent.
type RecomputeUseCase struct {
	Summaries ports.SummaryRepository
	Votes     ports.VoteSource
	Sessions  ports.SessionDirectory
	Clock     ports.Clock
	Logger    *slog.Logger
}

// RecomputeTeam recalculates and upserts the (team, card, session) summary.
func (uc RecomputeUseCase) RecomputeTeam(
	ctx context.Context,
	teamID string,
	cardID string,
	sessionID string,
) (entities.Summary, error) {
	votes, err := uc.Votes.ListVotesForTeam(ctx, strings.TrimSpace(teamID), strings.TrimSpace(cardID), strings.TrimSpace(sessionID))
	if err != nil {
		return entities.Summary{}, err
	}
	return uc.recompute(ctx, entities.ScopeTeam, teamID, cardID, sessionID, votes)
}

// RecomputeDepartment recalculates the department summary by pooling the raw
// votes of every team in the department. Pooling, not averaging team
// averages, keeps the percentages statistically correct.
func (uc RecomputeUseCase) RecomputeDepartment(
	ctx context.Context,
	departmentID string,
	cardID string,
	sessionID string,
) (entities.Summary, error) {
	votes, err := uc.Votes.ListVotesForDepartment(ctx, strings.TrimSpace(departmentID), strings.TrimSpace(cardID), strings.TrimSpace(sessionID))
	if err != nil {
		return entities.Summary{}, err
	}
	return uc.recompute(ctx, entities.ScopeDepartment, departmentID, cardID, sessionID, votes)
}

// RecomputeForVote refreshes both summaries affected by a vote write. The
// voting service calls this synchronously after each committed vote; a
// failure here must fail the triggering write.
func (uc RecomputeUseCase) RecomputeForVote(
	ctx context.Context,
	teamID string,
	departmentID string,
	cardID string,
	sessionID string,
) error {
	if strings.TrimSpace(teamID) != "" {
		if _, err := uc.RecomputeTeam(ctx, teamID, cardID, sessionID); err != nil {
			return err
		}
	}
	if strings.TrimSpace(departmentID) != "" {
		if _, err := uc.RecomputeDepartment(ctx, departmentID, cardID, sessionID); err != nil {
			return err
		}
	}
	return nil
}

func (uc RecomputeUseCase) recompute(
	ctx context.Context,
	scope entities.ScopeType,
	scopeID string,
	cardID string,
	sessionID string,
	votes []ports.VoteProjection,
) (entities.Summary, error) {
	logger := application.ResolveLogger(uc.Logger)
	scopeID = strings.TrimSpace(scopeID)
	cardID = strings.TrimSpace(cardID)
	sessionID = strings.TrimSpace(sessionID)
	if scopeID == "" || cardID == "" || sessionID == "" {
		return entities.Summary{}, domainerrors.ErrInvalidSummaryID
	}

	values := make([]entities.VoteValue, 0, len(votes))
	for _, vote := range votes {
		values = append(values, entities.VoteValue(strings.TrimSpace(vote.Value)))
	}
	distribution := entities.ComputeDistribution(values)

	baseline, err := uc.previousAverage(ctx, scope, scopeID, cardID, sessionID)
	if err != nil {
		return entities.Summary{}, err
	}

	now := uc.now()
	summary := entities.Summary{
		ScopeType:       scope,
		ScopeID:         scopeID,
		CardID:          cardID,
		SessionID:       sessionID,
		AverageVote:     distribution.AverageVote,
		GreenPercentage: distribution.GreenPercentage,
		AmberPercentage: distribution.AmberPercentage,
		RedPercentage:   distribution.RedPercentage,
		ProgressSummary: entities.CompareTrend(distribution.AverageVote, baseline),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.Summaries.SaveSummary(ctx, summary); err != nil {
		logger.Error("summary persist failed",
			"event", "summary_recompute_persist_failed",
			"module", "health-checks/summary-engine",
			"layer", "application",
			"scope_type", string(scope),
			"scope_id", scopeID,
			"card_id", cardID,
			"session_id", sessionID,
			"error", err.Error(),
		)
		return entities.Summary{}, domainerrors.ErrSummaryPersist
	}

	logger.Info("summary recomputed",
		"event", "summary_recomputed",
		"module", "health-checks/summary-engine",
		"layer", "application",
		"scope_type", string(scope),
		"scope_id", scopeID,
		"card_id", cardID,
		"session_id", sessionID,
		"total_votes", distribution.Total,
		"average_vote", string(distribution.AverageVote),
		"progress", string(summary.ProgressSummary),
	)
	return summary, nil
}

// previousAverage walks back through earlier sessions until it finds a
// persisted summary for the same scope and card. Scopes that skipped a
// session still trend against their last known state.
func (uc RecomputeUseCase) previousAverage(
	ctx context.Context,
	scope entities.ScopeType,
	scopeID string,
	cardID string,
	sessionID string,
) (entities.VoteValue, error) {
	cursor := sessionID
	for {
		previous, found, err := uc.Sessions.PreviousSession(ctx, cursor)
		if err != nil {
			return entities.VoteNoData, err
		}
		if !found {
			return entities.VoteNoData, nil
		}
		summary, found, err := uc.Summaries.GetSummary(ctx, scope, scopeID, cardID, previous.SessionID)
		if err != nil {
			return entities.VoteNoData, err
		}
		if found {
			return summary.AverageVote, nil
		}
		cursor = previous.SessionID
	}
}

func (uc RecomputeUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
