package queries

import (
	"context"
	"log/slog"
	"strings"

	"pulsecheck/contexts/health-checks/voting-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/voting-service/domain/errors"
	"pulsecheck/contexts/health-checks/voting-service/ports"
)

// VoteQueries serves the read side of voting: a user's votes for a session
// and per-card history lookups used for improvement tracking.
type VoteQueries struct {
	Votes    ports.VoteRepository
	Sessions ports.SessionDirectory
	Logger   *slog.Logger
}

// UserSessionVotes lists a user's votes; an empty sessionID targets the
// active session and yields an empty list when no session is active.
func (q VoteQueries) UserSessionVotes(ctx context.Context, userID string, sessionID string) ([]entities.Vote, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidVoteInput
	}
	if strings.TrimSpace(sessionID) == "" {
		session, found, err := q.Sessions.ActiveSession(ctx)
		if err != nil {
			return nil, err
		}
		if !found {
			return []entities.Vote{}, nil
		}
		sessionID = session.SessionID
	}
	return q.Votes.ListVotesByUserSession(ctx, strings.TrimSpace(userID), strings.TrimSpace(sessionID))
}

// PreviousVote finds the user's most recent vote for the card in any session
// earlier than the given one.
func (q VoteQueries) PreviousVote(ctx context.Context, userID string, cardID string, sessionID string) (entities.Vote, bool, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(cardID) == "" || strings.TrimSpace(sessionID) == "" {
		return entities.Vote{}, false, domainerrors.ErrInvalidVoteInput
	}
	cursor := strings.TrimSpace(sessionID)
	for {
		previous, found, err := q.Sessions.PreviousSession(ctx, cursor)
		if err != nil {
			return entities.Vote{}, false, err
		}
		if !found {
			return entities.Vote{}, false, nil
		}
		vote, found, err := q.Votes.GetVoteByIdentity(ctx, strings.TrimSpace(userID), strings.TrimSpace(cardID), previous.SessionID)
		if err != nil {
			return entities.Vote{}, false, err
		}
		if found {
			return vote, true, nil
		}
		cursor = previous.SessionID
	}
}

// HasImproved compares a vote with its predecessor. The second return is
// false when no previous vote exists to compare against.
func (q VoteQueries) HasImproved(ctx context.Context, voteID string) (bool, bool, error) {
	vote, err := q.Votes.GetVote(ctx, strings.TrimSpace(voteID))
	if err != nil {
		return false, false, err
	}
	previous, found, err := q.PreviousVote(ctx, vote.UserID, vote.CardID, vote.SessionID)
	if err != nil {
		return false, false, err
	}
	if !found {
		return false, false, nil
	}
	return vote.ImprovedOn(previous), true, nil
}
