package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "pulsecheck/contexts/health-checks/voting-service/application"
	"pulsecheck/contexts/health-checks/voting-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/voting-service/domain/errors"
	"pulsecheck/contexts/health-checks/voting-service/ports"
)

// CastVoteCommand is the write-model input for a single-card vote. An empty
// SessionID targets the active session.
type CastVoteCommand struct {
	UserID       string
	CardID       string
	SessionID    string
	Value        entities.VoteValue
	ProgressNote entities.ProgressNote
	Comment      string
}

// CastVoteResult returns the final vote state and an update marker the
// transport layer maps to API semantics.
type CastVoteResult struct {
	Vote      entities.Vote
	WasUpdate bool
}

// BulkVoteItem is one card's entry inside a "vote all" submission.
type BulkVoteItem struct {
	CardID       string
	Value        entities.VoteValue
	ProgressNote entities.ProgressNote
	Comment      string
}

// CastVotesCommand is the bulk "vote all" input. Validation failures reject
// the whole submission and enumerate every failing card.
type CastVotesCommand struct {
	UserID    string
	SessionID string
	Items     []BulkVoteItem
}

type CastVotesResult struct {
	Votes []entities.Vote
}

// VoteUseCase orchestrates vote writes: validation, upsert by
// (user, card, session), and synchronous summary recomputation for the
// voter's team and department. A failed recomputation fails the write.
type VoteUseCase struct {
	Votes      ports.VoteRepository
	Users      ports.MemberDirectory
	Cards      ports.CardCatalog
	Sessions   ports.SessionDirectory
	Recomputer ports.SummaryRecomputer
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc VoteUseCase) CastVote(ctx context.Context, cmd CastVoteCommand) (CastVoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	logger.Info("vote cast processing started",
		"event", "voting_cast_started",
		"module", "health-checks/voting-service",
		"layer", "application",
		"user_id", strings.TrimSpace(cmd.UserID),
		"card_id", strings.TrimSpace(cmd.CardID),
	)
	if strings.TrimSpace(cmd.UserID) == "" || strings.TrimSpace(cmd.CardID) == "" {
		return CastVoteResult{}, domainerrors.ErrInvalidVoteInput
	}
	if !cmd.Value.Valid() || !cmd.ProgressNote.Valid() {
		logger.Warn("vote cast validation failed",
			"event", "voting_cast_validation_failed",
			"module", "health-checks/voting-service",
			"layer", "application",
			"user_id", strings.TrimSpace(cmd.UserID),
			"card_id", strings.TrimSpace(cmd.CardID),
			"value", string(cmd.Value),
			"progress_note", string(cmd.ProgressNote),
		)
		return CastVoteResult{}, domainerrors.ErrInvalidVoteInput
	}

	voter, err := uc.resolveVoter(ctx, cmd.UserID)
	if err != nil {
		return CastVoteResult{}, err
	}
	session, err := uc.resolveVotingSession(ctx, cmd.SessionID)
	if err != nil {
		return CastVoteResult{}, err
	}
	if err := uc.checkCard(ctx, cmd.CardID); err != nil {
		return CastVoteResult{}, err
	}

	vote, wasUpdate, err := uc.upsertVote(ctx, voter, session.SessionID, BulkVoteItem{
		CardID:       cmd.CardID,
		Value:        cmd.Value,
		ProgressNote: cmd.ProgressNote,
		Comment:      cmd.Comment,
	})
	if err != nil {
		return CastVoteResult{}, err
	}
	if err := uc.Votes.SaveVote(ctx, vote); err != nil {
		return CastVoteResult{}, err
	}
	if err := uc.recompute(ctx, voter, vote.CardID, session.SessionID); err != nil {
		return CastVoteResult{}, err
	}

	logger.Info("vote cast",
		"event", "voting_cast",
		"module", "health-checks/voting-service",
		"layer", "application",
		"vote_id", vote.VoteID,
		"user_id", vote.UserID,
		"card_id", vote.CardID,
		"session_id", vote.SessionID,
		"value", string(vote.Value),
		"was_update", wasUpdate,
	)
	return CastVoteResult{Vote: vote, WasUpdate: wasUpdate}, nil
}

// CastVotes handles the bulk "vote all" submission. Every card is validated
// before anything is written; any failure rejects the whole submission with
// all failing cards enumerated. Valid submissions commit atomically and each
// touched (team, department, card) summary pair is recomputed once.
func (uc VoteUseCase) CastVotes(ctx context.Context, cmd CastVotesCommand) (CastVotesResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	logger.Info("bulk vote processing started",
		"event", "voting_bulk_cast_started",
		"module", "health-checks/voting-service",
		"layer", "application",
		"user_id", strings.TrimSpace(cmd.UserID),
		"card_count", len(cmd.Items),
	)
	if strings.TrimSpace(cmd.UserID) == "" || len(cmd.Items) == 0 {
		return CastVotesResult{}, domainerrors.ErrInvalidVoteInput
	}

	voter, err := uc.resolveVoter(ctx, cmd.UserID)
	if err != nil {
		return CastVotesResult{}, err
	}
	session, err := uc.resolveVotingSession(ctx, cmd.SessionID)
	if err != nil {
		return CastVotesResult{}, err
	}

	var failures []domainerrors.CardFailure
	seen := make(map[string]bool, len(cmd.Items))
	for _, item := range cmd.Items {
		cardID := strings.TrimSpace(item.CardID)
		if cardID == "" {
			failures = append(failures, domainerrors.CardFailure{CardID: cardID, Field: "card_id", Reason: "is required"})
			continue
		}
		if seen[cardID] {
			failures = append(failures, domainerrors.CardFailure{CardID: cardID, Field: "card_id", Reason: "appears more than once"})
			continue
		}
		seen[cardID] = true
		if !item.Value.Valid() {
			failures = append(failures, domainerrors.CardFailure{CardID: cardID, Field: "value", Reason: "must be green, amber or red"})
		}
		if !item.ProgressNote.Valid() {
			failures = append(failures, domainerrors.CardFailure{CardID: cardID, Field: "progress_note", Reason: "must be better, same or worse"})
		}
		if err := uc.checkCard(ctx, cardID); err != nil {
			failures = append(failures, domainerrors.CardFailure{CardID: cardID, Field: "card_id", Reason: err.Error()})
		}
	}
	if len(failures) > 0 {
		logger.Warn("bulk vote validation failed",
			"event", "voting_bulk_cast_validation_failed",
			"module", "health-checks/voting-service",
			"layer", "application",
			"user_id", voter.UserID,
			"failed_cards", len(failures),
		)
		return CastVotesResult{}, &domainerrors.BulkValidationError{Failures: failures}
	}

	votes := make([]entities.Vote, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		vote, _, err := uc.upsertVote(ctx, voter, session.SessionID, item)
		if err != nil {
			return CastVotesResult{}, err
		}
		votes = append(votes, vote)
	}
	if err := uc.Votes.SaveVotes(ctx, votes); err != nil {
		return CastVotesResult{}, err
	}
	for _, vote := range votes {
		if err := uc.recompute(ctx, voter, vote.CardID, session.SessionID); err != nil {
			return CastVotesResult{}, err
		}
	}

	logger.Info("bulk vote cast",
		"event", "voting_bulk_cast",
		"module", "health-checks/voting-service",
		"layer", "application",
		"user_id", voter.UserID,
		"session_id", session.SessionID,
		"card_count", len(votes),
	)
	return CastVotesResult{Votes: votes}, nil
}

func (uc VoteUseCase) resolveVoter(ctx context.Context, userID string) (ports.UserProjection, error) {
	voter, err := uc.Users.GetUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		return ports.UserProjection{}, err
	}
	if strings.TrimSpace(voter.TeamID) == "" {
		return ports.UserProjection{}, domainerrors.ErrUserHasNoTeam
	}
	return voter, nil
}

// resolveVotingSession returns the session votes may target: the active
// session when none is named, otherwise the named session if still open.
func (uc VoteUseCase) resolveVotingSession(ctx context.Context, sessionID string) (ports.SessionProjection, error) {
	if strings.TrimSpace(sessionID) == "" {
		session, found, err := uc.Sessions.ActiveSession(ctx)
		if err != nil {
			return ports.SessionProjection{}, err
		}
		if !found {
			return ports.SessionProjection{}, domainerrors.ErrNoActiveSession
		}
		return session, nil
	}
	session, err := uc.Sessions.GetSession(ctx, strings.TrimSpace(sessionID))
	if err != nil {
		return ports.SessionProjection{}, err
	}
	if !session.IsActive {
		return ports.SessionProjection{}, domainerrors.ErrSessionClosed
	}
	return session, nil
}

func (uc VoteUseCase) checkCard(ctx context.Context, cardID string) error {
	card, err := uc.Cards.GetCard(ctx, strings.TrimSpace(cardID))
	if err != nil {
		return err
	}
	if !card.Active {
		return domainerrors.ErrCardInactive
	}
	return nil
}

// upsertVote builds the vote row, reusing the existing ID and creation time
// when the (user, card, session) key already has a vote.
func (uc VoteUseCase) upsertVote(
	ctx context.Context,
	voter ports.UserProjection,
	sessionID string,
	item BulkVoteItem,
) (entities.Vote, bool, error) {
	now := uc.now()
	existing, found, err := uc.Votes.GetVoteByIdentity(ctx, voter.UserID, strings.TrimSpace(item.CardID), sessionID)
	if err != nil {
		return entities.Vote{}, false, err
	}
	if found {
		existing.Value = item.Value
		existing.ProgressNote = item.ProgressNote
		existing.Comment = strings.TrimSpace(item.Comment)
		existing.UpdatedAt = now
		return existing, true, nil
	}

	voteID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Vote{}, false, err
	}
	return entities.Vote{
		VoteID:       voteID,
		UserID:       voter.UserID,
		CardID:       strings.TrimSpace(item.CardID),
		SessionID:    sessionID,
		Value:        item.Value,
		ProgressNote: item.ProgressNote,
		Comment:      strings.TrimSpace(item.Comment),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, false, nil
}

func (uc VoteUseCase) recompute(ctx context.Context, voter ports.UserProjection, cardID string, sessionID string) error {
	if uc.Recomputer == nil {
		return nil
	}
	if err := uc.Recomputer.RecomputeForVote(ctx, voter.TeamID, voter.DepartmentID, cardID, sessionID); err != nil {
		application.ResolveLogger(uc.Logger).Error("summary recompute after vote failed",
			"event", "voting_recompute_failed",
			"module", "health-checks/voting-service",
			"layer", "application",
			"user_id", voter.UserID,
			"card_id", cardID,
			"session_id", sessionID,
			"error", err.Error(),
		)
		return domainerrors.ErrSummaryRecompute
	}
	return nil
}

func (uc VoteUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
