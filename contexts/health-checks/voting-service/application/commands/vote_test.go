package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulsecheck/contexts/health-checks/voting-service/adapters/memory"
	"pulsecheck/contexts/health-checks/voting-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/voting-service/domain/errors"
	"pulsecheck/contexts/health-checks/voting-service/ports"
)

type recorderRecomputer struct {
	calls int
	err   error
}

func (r *recorderRecomputer) RecomputeForVote(context.Context, string, string, string, string) error {
	r.calls++
	return r.err
}

func newVotingFixture(recomputer ports.SummaryRecomputer) (*memory.Store, VoteUseCase) {
	store := memory.NewStore()
	store.SetUser(ports.UserProjection{
		UserID:       "u1",
		Username:     "casey",
		Role:         "engineer",
		TeamID:       "team-1",
		DepartmentID: "dept-1",
	})
	store.SetCard(ports.CardProjection{CardID: "c1", Name: "Delivering Value", Active: true})
	store.SetCard(ports.CardProjection{CardID: "c2", Name: "Teamwork", Active: true})
	store.SetCard(ports.CardProjection{CardID: "c3", Name: "Retired Card", Active: false})
	store.SetSession(ports.SessionProjection{
		SessionID: "s1",
		Date:      time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	uc := VoteUseCase{
		Votes:      store,
		Users:      store,
		Cards:      store,
		Sessions:   store,
		Recomputer: recomputer,
		Clock:      store,
		IDGen:      store,
	}
	return store, uc
}

func TestCastVoteCreatesThenUpdatesSingleRow(t *testing.T) {
	recomputer := &recorderRecomputer{}
	store, uc := newVotingFixture(recomputer)

	first, err := uc.CastVote(context.Background(), CastVoteCommand{
		UserID:       "u1",
		CardID:       "c1",
		Value:        entities.VoteGreen,
		ProgressNote: entities.ProgressBetter,
	})
	if err != nil {
		t.Fatalf("first cast: %v", err)
	}
	if first.WasUpdate {
		t.Fatalf("first cast must not be an update")
	}

	second, err := uc.CastVote(context.Background(), CastVoteCommand{
		UserID:       "u1",
		CardID:       "c1",
		Value:        entities.VoteRed,
		ProgressNote: entities.ProgressWorse,
		Comment:      "regressions piling up",
	})
	if err != nil {
		t.Fatalf("second cast: %v", err)
	}
	if !second.WasUpdate {
		t.Fatalf("second cast for the same card must be an update")
	}
	if second.Vote.VoteID != first.Vote.VoteID {
		t.Fatalf("update must reuse the vote ID, got %s then %s", first.Vote.VoteID, second.Vote.VoteID)
	}

	votes, err := store.ListVotesByUserSession(context.Background(), "u1", "s1")
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("expected a single row per (user, card, session), got %d", len(votes))
	}
	if votes[0].Value != entities.VoteRed {
		t.Fatalf("expected latest value to win, got %q", votes[0].Value)
	}
	if recomputer.calls != 2 {
		t.Fatalf("expected recompute per committed write, got %d calls", recomputer.calls)
	}
}

func TestCastVoteRejectsInvalidInput(t *testing.T) {
	_, uc := newVotingFixture(&recorderRecomputer{})

	_, err := uc.CastVote(context.Background(), CastVoteCommand{
		UserID:       "u1",
		CardID:       "c1",
		Value:        entities.VoteValue("blue"),
		ProgressNote: entities.ProgressBetter,
	})
	if !errors.Is(err, domainerrors.ErrInvalidVoteInput) {
		t.Fatalf("expected ErrInvalidVoteInput for bad value, got %v", err)
	}

	_, err = uc.CastVote(context.Background(), CastVoteCommand{
		UserID:       "u1",
		CardID:       "c1",
		Value:        entities.VoteGreen,
		ProgressNote: entities.ProgressNote("sideways"),
	})
	if !errors.Is(err, domainerrors.ErrInvalidVoteInput) {
		t.Fatalf("expected ErrInvalidVoteInput for bad progress note, got %v", err)
	}
}

func TestCastVoteRequiresActiveSession(t *testing.T) {
	store, uc := newVotingFixture(&recorderRecomputer{})
	store.SetSession(ports.SessionProjection{
		SessionID: "s1",
		Date:      time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
		IsActive:  false,
	})

	_, err := uc.CastVote(context.Background(), CastVoteCommand{
		UserID:       "u1",
		CardID:       "c1",
		Value:        entities.VoteGreen,
		ProgressNote: entities.ProgressSame,
	})
	if !errors.Is(err, domainerrors.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}

	_, err = uc.CastVote(context.Background(), CastVoteCommand{
		UserID:       "u1",
		CardID:       "c1",
		SessionID:    "s1",
		Value:        entities.VoteGreen,
		ProgressNote: entities.ProgressSame,
	})
	if !errors.Is(err, domainerrors.ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed for a named closed session, got %v", err)
	}
}

func TestCastVoteRequiresTeamAssignment(t *testing.T) {
	store, uc := newVotingFixture(&recorderRecomputer{})
	store.SetUser(ports.UserProjection{UserID: "u2", Username: "lee", Role: "engineer"})

	_, err := uc.CastVote(context.Background(), CastVoteCommand{
		UserID:       "u2",
		CardID:       "c1",
		Value:        entities.VoteGreen,
		ProgressNote: entities.ProgressSame,
	})
	if !errors.Is(err, domainerrors.ErrUserHasNoTeam) {
		t.Fatalf("expected ErrUserHasNoTeam, got %v", err)
	}
}

func TestCastVoteRejectsInactiveCard(t *testing.T) {
	_, uc := newVotingFixture(&recorderRecomputer{})

	_, err := uc.CastVote(context.Background(), CastVoteCommand{
		UserID:       "u1",
		CardID:       "c3",
		Value:        entities.VoteGreen,
		ProgressNote: entities.ProgressSame,
	})
	if !errors.Is(err, domainerrors.ErrCardInactive) {
		t.Fatalf("expected ErrCardInactive, got %v", err)
	}
}

func TestCastVoteRecomputeFailureFailsWrite(t *testing.T) {
	recomputer := &recorderRecomputer{err: errors.New("summary store down")}
	_, uc := newVotingFixture(recomputer)

	_, err := uc.CastVote(context.Background(), CastVoteCommand{
		UserID:       "u1",
		CardID:       "c1",
		Value:        entities.VoteGreen,
		ProgressNote: entities.ProgressSame,
	})
	if !errors.Is(err, domainerrors.ErrSummaryRecompute) {
		t.Fatalf("expected ErrSummaryRecompute, got %v", err)
	}
}

func TestCastVotesRejectsWholeSubmissionAndListsEveryFailure(t *testing.T) {
	store, uc := newVotingFixture(&recorderRecomputer{})

	_, err := uc.CastVotes(context.Background(), CastVotesCommand{
		UserID: "u1",
		Items: []BulkVoteItem{
			{CardID: "c1", Value: entities.VoteGreen, ProgressNote: entities.ProgressSame},
			{CardID: "c1", Value: entities.VoteGreen, ProgressNote: entities.ProgressSame},
			{CardID: "missing", Value: entities.VoteGreen, ProgressNote: entities.ProgressSame},
			{CardID: "c2", Value: entities.VoteValue("blue"), ProgressNote: entities.ProgressSame},
			{CardID: "c3", Value: entities.VoteGreen, ProgressNote: entities.ProgressSame},
		},
	})

	var bulkErr *domainerrors.BulkValidationError
	if !errors.As(err, &bulkErr) {
		t.Fatalf("expected BulkValidationError, got %v", err)
	}
	if len(bulkErr.Failures) != 4 {
		t.Fatalf("expected duplicate, missing, invalid value and inactive card all listed, got %d: %v",
			len(bulkErr.Failures), bulkErr.Failures)
	}
	if !errors.Is(err, domainerrors.ErrInvalidVoteInput) {
		t.Fatalf("bulk error must unwrap to ErrInvalidVoteInput")
	}

	votes, listErr := store.ListVotesByUserSession(context.Background(), "u1", "s1")
	if listErr != nil {
		t.Fatalf("list votes: %v", listErr)
	}
	if len(votes) != 0 {
		t.Fatalf("rejected submission must write nothing, found %d votes", len(votes))
	}
}

func TestCastVotesCommitsAllCards(t *testing.T) {
	recomputer := &recorderRecomputer{}
	store, uc := newVotingFixture(recomputer)

	result, err := uc.CastVotes(context.Background(), CastVotesCommand{
		UserID: "u1",
		Items: []BulkVoteItem{
			{CardID: "c1", Value: entities.VoteGreen, ProgressNote: entities.ProgressBetter},
			{CardID: "c2", Value: entities.VoteAmber, ProgressNote: entities.ProgressSame},
		},
	})
	if err != nil {
		t.Fatalf("bulk cast: %v", err)
	}
	if len(result.Votes) != 2 {
		t.Fatalf("expected 2 votes, got %d", len(result.Votes))
	}

	votes, err := store.ListVotesByUserSession(context.Background(), "u1", "s1")
	if err != nil {
		t.Fatalf("list votes: %v", err)
	}
	if len(votes) != 2 {
		t.Fatalf("expected both votes persisted, got %d", len(votes))
	}
	if recomputer.calls != 2 {
		t.Fatalf("expected one recompute per card, got %d", recomputer.calls)
	}
}
