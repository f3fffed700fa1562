package httpadapter

import (
	"context"
	"log/slog"

	"pulsecheck/contexts/health-checks/voting-service/application/commands"
	"pulsecheck/contexts/health-checks/voting-service/application/queries"
	"pulsecheck/contexts/health-checks/voting-service/domain/entities"
	httptransport "pulsecheck/contexts/health-checks/voting-service/transport/http"
)

type Handler struct {
	Votes   commands.VoteUseCase
	Queries queries.VoteQueries
	Logger  *slog.Logger
}

func (h Handler) CastVoteHandler(ctx context.Context, userID string, req httptransport.CastVoteRequest) (httptransport.VoteResponse, error) {
	result, err := h.Votes.CastVote(ctx, commands.CastVoteCommand{
		UserID:       userID,
		CardID:       req.CardID,
		SessionID:    req.SessionID,
		Value:        entities.VoteValue(req.Value),
		ProgressNote: entities.ProgressNote(req.ProgressNote),
		Comment:      req.Comment,
	})
	if err != nil {
		return httptransport.VoteResponse{}, err
	}
	response := mapVote(result.Vote)
	response.WasUpdate = result.WasUpdate
	return response, nil
}

func (h Handler) CastVotesHandler(ctx context.Context, userID string, req httptransport.CastVotesRequest) (httptransport.CastVotesResponse, error) {
	items := make([]commands.BulkVoteItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.BulkVoteItem{
			CardID:       item.CardID,
			Value:        entities.VoteValue(item.Value),
			ProgressNote: entities.ProgressNote(item.ProgressNote),
			Comment:      item.Comment,
		})
	}
	result, err := h.Votes.CastVotes(ctx, commands.CastVotesCommand{
		UserID:    userID,
		SessionID: req.SessionID,
		Items:     items,
	})
	if err != nil {
		return httptransport.CastVotesResponse{}, err
	}
	votes := make([]httptransport.VoteResponse, 0, len(result.Votes))
	for _, vote := range result.Votes {
		votes = append(votes, mapVote(vote))
	}
	return httptransport.CastVotesResponse{Votes: votes}, nil
}

func (h Handler) MyVotesHandler(ctx context.Context, userID string, sessionID string) (httptransport.VoteListResponse, error) {
	votes, err := h.Queries.UserSessionVotes(ctx, userID, sessionID)
	if err != nil {
		return httptransport.VoteListResponse{}, err
	}
	items := make([]httptransport.VoteResponse, 0, len(votes))
	for _, vote := range votes {
		items = append(items, mapVote(vote))
	}
	return httptransport.VoteListResponse{Items: items}, nil
}

func mapVote(vote entities.Vote) httptransport.VoteResponse {
	return httptransport.VoteResponse{
		VoteID:       vote.VoteID,
		UserID:       vote.UserID,
		CardID:       vote.CardID,
		SessionID:    vote.SessionID,
		Value:        string(vote.Value),
		ProgressNote: string(vote.ProgressNote),
		Comment:      vote.Comment,
	}
}
