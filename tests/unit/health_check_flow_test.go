package unit

import (
	"context"
	"testing"
	"time"

	summaryengine "pulsecheck/contexts/health-checks/summary-engine"
	summaryentities "pulsecheck/contexts/health-checks/summary-engine/domain/entities"
	summaryports "pulsecheck/contexts/health-checks/summary-engine/ports"
	votingservice "pulsecheck/contexts/health-checks/voting-service"
	votingcommands "pulsecheck/contexts/health-checks/voting-service/application/commands"
	votingentities "pulsecheck/contexts/health-checks/voting-service/domain/entities"
	votingports "pulsecheck/contexts/health-checks/voting-service/ports"
)

// projectionBridge mirrors committed votes into the summary engine's vote
// source before triggering recomputation, standing in for the shared votes
// table the postgres adapters read.
type projectionBridge struct {
	voting    *votingservice.Module
	summaries *summaryengine.Module
	users     map[string]votingports.UserProjection
}

func (b *projectionBridge) RecomputeForVote(ctx context.Context, teamID, departmentID, cardID, sessionID string) error {
	votes, err := b.voting.Store.ListVotesByCardSession(ctx, cardID, sessionID)
	if err != nil {
		return err
	}
	for _, vote := range votes {
		voter := b.users[vote.UserID]
		b.summaries.Store.AddVote(summaryports.VoteProjection{
			VoteID:       vote.VoteID,
			UserID:       vote.UserID,
			TeamID:       voter.TeamID,
			DepartmentID: voter.DepartmentID,
			CardID:       vote.CardID,
			SessionID:    vote.SessionID,
			Value:        string(vote.Value),
		})
	}
	return b.summaries.Recompute.RecomputeForVote(ctx, teamID, departmentID, cardID, sessionID)
}

func TestVotesFlowIntoTeamAndDepartmentSummaries(t *testing.T) {
	summaries := summaryengine.NewInMemoryModule(nil)
	bridge := &projectionBridge{summaries: &summaries, users: make(map[string]votingports.UserProjection)}
	voting := votingservice.NewInMemoryModule(bridge, nil)
	bridge.voting = &voting

	sessionDate := time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)
	voting.Store.SetSession(votingports.SessionProjection{SessionID: "s1", Date: sessionDate, IsActive: true})
	summaries.Store.SetSession(summaryports.SessionProjection{SessionID: "s1", Date: sessionDate, IsActive: true})
	voting.Store.SetCard(votingports.CardProjection{CardID: "c1", Name: "Delivering Value", Active: true})

	seedUser := func(userID, teamID string) {
		projection := votingports.UserProjection{
			UserID:       userID,
			Role:         "engineer",
			TeamID:       teamID,
			DepartmentID: "d1",
		}
		voting.Store.SetUser(projection)
		bridge.users[userID] = projection
	}
	seedUser("u1", "t1")
	seedUser("u2", "t1")
	seedUser("u3", "t1")
	seedUser("u4", "t2")

	uc := votingcommands.VoteUseCase{
		Votes:      voting.Store,
		Users:      voting.Store,
		Cards:      voting.Store,
		Sessions:   voting.Store,
		Recomputer: bridge,
		Clock:      voting.Store,
		IDGen:      voting.Store,
	}

	cast := func(userID string, value votingentities.VoteValue) {
		t.Helper()
		_, err := uc.CastVote(context.Background(), votingcommands.CastVoteCommand{
			UserID:       userID,
			CardID:       "c1",
			Value:        value,
			ProgressNote: votingentities.ProgressSame,
		})
		if err != nil {
			t.Fatalf("cast vote for %s: %v", userID, err)
		}
	}
	cast("u1", votingentities.VoteGreen)
	cast("u2", votingentities.VoteGreen)
	cast("u3", votingentities.VoteRed)
	cast("u4", votingentities.VoteRed)

	teamSummary, found, err := summaries.Store.GetSummary(context.Background(), summaryentities.ScopeTeam, "t1", "c1", "s1")
	if err != nil || !found {
		t.Fatalf("expected team summary, found=%v err=%v", found, err)
	}
	if teamSummary.AverageVote != summaryentities.VoteGreen {
		t.Fatalf("team t1 voted 2 green 1 red, expected green, got %q", teamSummary.AverageVote)
	}

	deptSummary, found, err := summaries.Store.GetSummary(context.Background(), summaryentities.ScopeDepartment, "d1", "c1", "s1")
	if err != nil || !found {
		t.Fatalf("expected department summary, found=%v err=%v", found, err)
	}
	if deptSummary.AverageVote != summaryentities.VoteRed {
		t.Fatalf("department pooled 2 green 2 red, tie must resolve red, got %q", deptSummary.AverageVote)
	}
}

func TestDepartmentSummaryPoolsRawVotesAcrossTeams(t *testing.T) {
	summaries := summaryengine.NewInMemoryModule(nil)
	summaries.Store.SetSession(summaryports.SessionProjection{
		SessionID: "s1",
		Date:      time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	})

	// Team A: 3 green. Team B: 1 red. Averaging team averages would split
	// 50/50; pooling raw votes must yield 75% green.
	addVote := func(voteID, userID, teamID, value string) {
		summaries.Store.AddVote(summaryports.VoteProjection{
			VoteID:       voteID,
			UserID:       userID,
			TeamID:       teamID,
			DepartmentID: "d1",
			CardID:       "c1",
			SessionID:    "s1",
			Value:        value,
		})
	}
	addVote("v1", "u1", "ta", "green")
	addVote("v2", "u2", "ta", "green")
	addVote("v3", "u3", "ta", "green")
	addVote("v4", "u4", "tb", "red")

	summary, err := summaries.Recompute.RecomputeDepartment(context.Background(), "d1", "c1", "s1")
	if err != nil {
		t.Fatalf("recompute department: %v", err)
	}
	if summary.GreenPercentage != 75 || summary.RedPercentage != 25 {
		t.Fatalf("expected pooled 75/25 split, got %v/%v", summary.GreenPercentage, summary.RedPercentage)
	}
	if summary.AverageVote != summaryentities.VoteGreen {
		t.Fatalf("expected green plurality, got %q", summary.AverageVote)
	}
}
