package httpserver

import (
	"errors"
	"net/http"

	summaryerrors "pulsecheck/contexts/health-checks/summary-engine/domain/errors"
	summaryhttp "pulsecheck/contexts/health-checks/summary-engine/transport/http"
)

func (s *Server) handleTeamDashboard(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeSummaryError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	teamID := r.PathValue("team_id")
	if err := s.directory.Queries.AuthorizeTeamManagement(r.Context(), userID, teamID); err != nil {
		writeDirectoryDomainError(w, err)
		return
	}

	resp, err := s.summaries.Handler.TeamDashboardHandler(r.Context(), teamID, r.URL.Query().Get("session_id"))
	if err != nil {
		writeSummaryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTeamHealth(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeSummaryError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	teamID := r.PathValue("team_id")
	if err := s.directory.Queries.AuthorizeTeamManagement(r.Context(), userID, teamID); err != nil {
		writeDirectoryDomainError(w, err)
		return
	}

	resp, err := s.summaries.Handler.TeamHealthHandler(r.Context(), teamID, r.URL.Query().Get("session_id"))
	if err != nil {
		writeSummaryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDepartmentDashboard(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeSummaryError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	departmentID := r.PathValue("department_id")
	if err := s.directory.Queries.AuthorizeDepartmentSummary(r.Context(), userID, departmentID); err != nil {
		writeDirectoryDomainError(w, err)
		return
	}

	resp, err := s.summaries.Handler.DepartmentDashboardHandler(r.Context(), departmentID, r.URL.Query().Get("session_id"))
	if err != nil {
		writeSummaryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCardDistribution(w http.ResponseWriter, r *http.Request) {
	resp, err := s.summaries.Handler.CardDistributionHandler(
		r.Context(),
		r.PathValue("card_id"),
		r.URL.Query().Get("session_id"),
	)
	if err != nil {
		writeSummaryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeSummaryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, summaryerrors.ErrInvalidScope),
		errors.Is(err, summaryerrors.ErrInvalidSummaryID):
		writeSummaryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, summaryerrors.ErrSummaryNotFound):
		writeSummaryError(w, http.StatusNotFound, "summary_not_found", err.Error())
	case errors.Is(err, summaryerrors.ErrSessionNotFound):
		writeSummaryError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, summaryerrors.ErrSummaryPersist):
		writeSummaryError(w, http.StatusServiceUnavailable, "summary_persist_failed", err.Error())
	default:
		writeSummaryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeSummaryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, summaryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
