package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	votingerrors "pulsecheck/contexts/health-checks/voting-service/domain/errors"
	votinghttp "pulsecheck/contexts/health-checks/voting-service/transport/http"
)

func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeVotingError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req votinghttp.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVotingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.voting.Handler.CastVoteHandler(r.Context(), userID, req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	status := http.StatusCreated
	if resp.WasUpdate {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleCastVotes(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeVotingError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req votinghttp.CastVotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVotingError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.voting.Handler.CastVotesHandler(r.Context(), userID, req)
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleMyVotes(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeVotingError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.voting.Handler.MyVotesHandler(r.Context(), userID, r.URL.Query().Get("session_id"))
	if err != nil {
		writeVotingDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeVotingDomainError(w http.ResponseWriter, err error) {
	var bulkErr *votingerrors.BulkValidationError
	if errors.As(err, &bulkErr) {
		invalid := make([]votinghttp.InvalidCard, 0, len(bulkErr.Failures))
		for _, failure := range bulkErr.Failures {
			invalid = append(invalid, votinghttp.InvalidCard{
				CardID: failure.CardID,
				Field:  failure.Field,
				Reason: failure.Reason,
			})
		}
		writeJSON(w, http.StatusBadRequest, votinghttp.ErrorResponse{
			Code:         "invalid_cards",
			Message:      "one or more cards failed validation",
			InvalidCards: invalid,
		})
		return
	}

	switch {
	case errors.Is(err, votingerrors.ErrInvalidVoteInput):
		writeVotingError(w, http.StatusBadRequest, "invalid_vote_input", err.Error())
	case errors.Is(err, votingerrors.ErrNoActiveSession):
		writeVotingError(w, http.StatusConflict, "no_active_session", err.Error())
	case errors.Is(err, votingerrors.ErrSessionClosed):
		writeVotingError(w, http.StatusConflict, "session_closed", err.Error())
	case errors.Is(err, votingerrors.ErrSessionNotFound):
		writeVotingError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, votingerrors.ErrCardNotFound):
		writeVotingError(w, http.StatusNotFound, "card_not_found", err.Error())
	case errors.Is(err, votingerrors.ErrCardInactive):
		writeVotingError(w, http.StatusConflict, "card_inactive", err.Error())
	case errors.Is(err, votingerrors.ErrUserNotFound):
		writeVotingError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, votingerrors.ErrUserHasNoTeam):
		writeVotingError(w, http.StatusConflict, "user_has_no_team", err.Error())
	case errors.Is(err, votingerrors.ErrVoteNotFound):
		writeVotingError(w, http.StatusNotFound, "vote_not_found", err.Error())
	case errors.Is(err, votingerrors.ErrSummaryRecompute):
		writeVotingError(w, http.StatusServiceUnavailable, "summary_recompute_failed", err.Error())
	default:
		writeVotingError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeVotingError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, votinghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
