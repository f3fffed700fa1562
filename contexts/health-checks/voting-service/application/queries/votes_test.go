package queries

import (
	"context"
	"testing"
	"time"

	"pulsecheck/contexts/health-checks/voting-service/adapters/memory"
	"pulsecheck/contexts/health-checks/voting-service/domain/entities"
	"pulsecheck/contexts/health-checks/voting-service/ports"
)

func newQueryFixture() (*memory.Store, VoteQueries) {
	store := memory.NewStore()
	store.SetSession(ports.SessionProjection{
		SessionID: "s1",
		Date:      time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
	})
	store.SetSession(ports.SessionProjection{
		SessionID: "s2",
		Date:      time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
	})
	store.SetSession(ports.SessionProjection{
		SessionID: "s3",
		Date:      time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	return store, VoteQueries{Votes: store, Sessions: store}
}

func saveVote(store *memory.Store, voteID, sessionID string, value entities.VoteValue) {
	_ = store.SaveVote(context.Background(), entities.Vote{
		VoteID:       voteID,
		UserID:       "u1",
		CardID:       "c1",
		SessionID:    sessionID,
		Value:        value,
		ProgressNote: entities.ProgressSame,
	})
}

func TestUserSessionVotesDefaultsToActiveSession(t *testing.T) {
	store, q := newQueryFixture()
	saveVote(store, "v-old", "s1", entities.VoteRed)
	saveVote(store, "v-new", "s3", entities.VoteGreen)

	votes, err := q.UserSessionVotes(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("user session votes: %v", err)
	}
	if len(votes) != 1 || votes[0].VoteID != "v-new" {
		t.Fatalf("expected only the active-session vote, got %+v", votes)
	}
}

func TestUserSessionVotesNoActiveSessionYieldsEmptyList(t *testing.T) {
	store := memory.NewStore()
	q := VoteQueries{Votes: store, Sessions: store}

	votes, err := q.UserSessionVotes(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if votes == nil || len(votes) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", votes)
	}
}

func TestPreviousVoteWalksBackAcrossSessions(t *testing.T) {
	store, q := newQueryFixture()
	// The user skipped s2; the s1 vote is still the baseline for s3.
	saveVote(store, "v1", "s1", entities.VoteAmber)

	previous, found, err := q.PreviousVote(context.Background(), "u1", "c1", "s3")
	if err != nil {
		t.Fatalf("previous vote: %v", err)
	}
	if !found {
		t.Fatalf("expected baseline vote from s1")
	}
	if previous.VoteID != "v1" {
		t.Fatalf("expected v1, got %s", previous.VoteID)
	}
}

func TestHasImprovedComparesAgainstBaseline(t *testing.T) {
	store, q := newQueryFixture()
	saveVote(store, "v1", "s1", entities.VoteRed)
	saveVote(store, "v2", "s3", entities.VoteGreen)

	improved, known, err := q.HasImproved(context.Background(), "v2")
	if err != nil {
		t.Fatalf("has improved: %v", err)
	}
	if !known {
		t.Fatalf("expected comparison to be possible")
	}
	if !improved {
		t.Fatalf("red to green must count as improvement")
	}
}

func TestHasImprovedWithoutBaselineIsUnknown(t *testing.T) {
	store, q := newQueryFixture()
	saveVote(store, "v1", "s1", entities.VoteGreen)

	_, known, err := q.HasImproved(context.Background(), "v1")
	if err != nil {
		t.Fatalf("has improved: %v", err)
	}
	if known {
		t.Fatalf("first vote has no baseline to compare against")
	}
}
