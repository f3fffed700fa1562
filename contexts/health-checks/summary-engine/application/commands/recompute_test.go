package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulsecheck/contexts/health-checks/summary-engine/adapters/memory"
	"pulsecheck/contexts/health-checks/summary-engine/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/summary-engine/domain/errors"
	"pulsecheck/contexts/health-checks/summary-engine/ports"
)

func newStoreWithSessions() *memory.Store {
	store := memory.NewStore()
	store.SetSession(ports.SessionProjection{
		SessionID: "s1",
		Date:      time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		IsActive:  false,
	})
	store.SetSession(ports.SessionProjection{
		SessionID: "s2",
		Date:      time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})
	return store
}

func seedTeamVotes(store *memory.Store, sessionID string, green, amber, red int) {
	seq := 0
	add := func(value string, count int) {
		for i := 0; i < count; i++ {
			seq++
			store.AddVote(ports.VoteProjection{
				VoteID:       sessionID + "-v" + string(rune('a'+seq)),
				UserID:       "user-" + string(rune('a'+seq)),
				TeamID:       "team-1",
				DepartmentID: "dept-1",
				CardID:       "card-1",
				SessionID:    sessionID,
				Value:        value,
			})
		}
	}
	add("green", green)
	add("amber", amber)
	add("red", red)
}

func TestRecomputeTeamComputesPercentagesAndTrend(t *testing.T) {
	store := newStoreWithSessions()
	uc := RecomputeUseCase{Summaries: store, Votes: store, Sessions: store, Clock: store}

	seedTeamVotes(store, "s1", 4, 3, 3)
	first, err := uc.RecomputeTeam(context.Background(), "team-1", "card-1", "s1")
	if err != nil {
		t.Fatalf("recompute s1: %v", err)
	}
	if first.AverageVote != entities.VoteGreen {
		t.Fatalf("expected green plurality in s1, got %q", first.AverageVote)
	}
	if first.ProgressSummary != entities.ProgressSame {
		t.Fatalf("expected neutral trend with no baseline, got %q", first.ProgressSummary)
	}

	seedTeamVotes(store, "s2", 3, 3, 4)
	second, err := uc.RecomputeTeam(context.Background(), "team-1", "card-1", "s2")
	if err != nil {
		t.Fatalf("recompute s2: %v", err)
	}
	if second.AverageVote != entities.VoteRed {
		t.Fatalf("expected red plurality in s2, got %q", second.AverageVote)
	}
	if second.ProgressSummary != entities.ProgressWorse {
		t.Fatalf("expected worse trend from green to red, got %q", second.ProgressSummary)
	}
	if second.RedPercentage != 40 {
		t.Fatalf("expected 40%% red, got %v", second.RedPercentage)
	}
}

func TestRecomputeTeamZeroVotesYieldsNoData(t *testing.T) {
	store := newStoreWithSessions()
	uc := RecomputeUseCase{Summaries: store, Votes: store, Sessions: store, Clock: store}

	summary, err := uc.RecomputeTeam(context.Background(), "team-1", "card-1", "s1")
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if summary.AverageVote != entities.VoteNoData {
		t.Fatalf("expected no_data with zero votes, got %q", summary.AverageVote)
	}
	if summary.GreenPercentage != 0 || summary.AmberPercentage != 0 || summary.RedPercentage != 0 {
		t.Fatalf("expected zero percentages, got %v/%v/%v",
			summary.GreenPercentage, summary.AmberPercentage, summary.RedPercentage)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	store := newStoreWithSessions()
	uc := RecomputeUseCase{Summaries: store, Votes: store, Sessions: store, Clock: store}
	seedTeamVotes(store, "s1", 2, 1, 0)

	first, err := uc.RecomputeTeam(context.Background(), "team-1", "card-1", "s1")
	if err != nil {
		t.Fatalf("first recompute: %v", err)
	}
	second, err := uc.RecomputeTeam(context.Background(), "team-1", "card-1", "s1")
	if err != nil {
		t.Fatalf("second recompute: %v", err)
	}
	if first.AverageVote != second.AverageVote ||
		first.GreenPercentage != second.GreenPercentage ||
		first.ProgressSummary != second.ProgressSummary {
		t.Fatalf("expected identical summaries, got %+v vs %+v", first, second)
	}
}

func TestRecomputeTrendSkipsSessionsWithoutSummary(t *testing.T) {
	store := memory.NewStore()
	store.SetSession(ports.SessionProjection{SessionID: "s1", Date: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)})
	store.SetSession(ports.SessionProjection{SessionID: "s2", Date: time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)})
	store.SetSession(ports.SessionProjection{SessionID: "s3", Date: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)})
	uc := RecomputeUseCase{Summaries: store, Votes: store, Sessions: store, Clock: store}

	// s1 has a green summary; s2 has none; s3 must still trend against s1.
	seedTeamVotes(store, "s1", 3, 0, 0)
	if _, err := uc.RecomputeTeam(context.Background(), "team-1", "card-1", "s1"); err != nil {
		t.Fatalf("recompute s1: %v", err)
	}
	seedTeamVotes(store, "s3", 0, 3, 0)
	summary, err := uc.RecomputeTeam(context.Background(), "team-1", "card-1", "s3")
	if err != nil {
		t.Fatalf("recompute s3: %v", err)
	}
	if summary.ProgressSummary != entities.ProgressWorse {
		t.Fatalf("expected worse trend against skipped baseline, got %q", summary.ProgressSummary)
	}
}

func TestRecomputeForVoteUpdatesTeamAndDepartment(t *testing.T) {
	store := newStoreWithSessions()
	uc := RecomputeUseCase{Summaries: store, Votes: store, Sessions: store, Clock: store}
	seedTeamVotes(store, "s1", 1, 0, 0)

	if err := uc.RecomputeForVote(context.Background(), "team-1", "dept-1", "card-1", "s1"); err != nil {
		t.Fatalf("recompute for vote: %v", err)
	}

	if _, found, _ := store.GetSummary(context.Background(), entities.ScopeTeam, "team-1", "card-1", "s1"); !found {
		t.Fatalf("expected team summary to be persisted")
	}
	if _, found, _ := store.GetSummary(context.Background(), entities.ScopeDepartment, "dept-1", "card-1", "s1"); !found {
		t.Fatalf("expected department summary to be persisted")
	}
}

type failingSummaryRepo struct {
	*memory.Store
}

func (failingSummaryRepo) SaveSummary(context.Context, entities.Summary) error {
	return errors.New("disk full")
}

func TestRecomputePersistFailureSurfacesSentinel(t *testing.T) {
	store := newStoreWithSessions()
	uc := RecomputeUseCase{
		Summaries: failingSummaryRepo{store},
		Votes:     store,
		Sessions:  store,
		Clock:     store,
	}
	seedTeamVotes(store, "s1", 1, 0, 0)

	_, err := uc.RecomputeTeam(context.Background(), "team-1", "card-1", "s1")
	if !errors.Is(err, domainerrors.ErrSummaryPersist) {
		t.Fatalf("expected ErrSummaryPersist, got %v", err)
	}
}

func TestRecomputeRejectsBlankIdentifiers(t *testing.T) {
	store := newStoreWithSessions()
	uc := RecomputeUseCase{Summaries: store, Votes: store, Sessions: store, Clock: store}

	_, err := uc.RecomputeTeam(context.Background(), "", "card-1", "s1")
	if !errors.Is(err, domainerrors.ErrInvalidSummaryID) {
		t.Fatalf("expected ErrInvalidSummaryID, got %v", err)
	}
}
