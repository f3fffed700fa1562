package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	sessionerrors "pulsecheck/contexts/health-checks/session-service/domain/errors"
	sessionhttp "pulsecheck/contexts/health-checks/session-service/transport/http"
	directoryerrors "pulsecheck/contexts/organization/directory-service/domain/errors"
)

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeSessionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if err := s.requireAdmin(r, userID); err != nil {
		writeDirectoryDomainError(w, err)
		return
	}

	var req sessionhttp.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSessionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.sessions.Handler.CreateSessionHandler(r.Context(), req)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	userID := requestUserID(r)
	if userID == "" {
		writeSessionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}
	if err := s.requireAdmin(r, userID); err != nil {
		writeDirectoryDomainError(w, err)
		return
	}

	resp, err := s.sessions.Handler.CloseSessionHandler(r.Context(), r.PathValue("session_id"))
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.sessions.Handler.ListSessionsHandler(r.Context())
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActiveSession(w http.ResponseWriter, r *http.Request) {
	resp, err := s.sessions.Handler.ActiveSessionHandler(r.Context())
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	resp, err := s.sessions.Handler.ListCardsHandler(r.Context())
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.sessions.Handler.GetCardHandler(r.Context(), r.PathValue("card_id"))
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleParticipation(w http.ResponseWriter, r *http.Request) {
	resp, err := s.sessions.Handler.ParticipationHandler(
		r.Context(),
		r.PathValue("session_id"),
		r.URL.Query().Get("team_id"),
	)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// requireAdmin gates session lifecycle endpoints behind the admin role.
func (s *Server) requireAdmin(r *http.Request, userID string) error {
	user, err := s.directory.Queries.GetUser(r.Context(), userID)
	if err != nil {
		return err
	}
	if string(user.Role) != "admin" {
		return directoryerrors.ErrForbidden
	}
	return nil
}

func writeSessionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sessionerrors.ErrInvalidSessionInput):
		writeSessionError(w, http.StatusBadRequest, "invalid_session_input", err.Error())
	case errors.Is(err, sessionerrors.ErrSessionNotFound):
		writeSessionError(w, http.StatusNotFound, "session_not_found", err.Error())
	case errors.Is(err, sessionerrors.ErrNoActiveSession):
		writeSessionError(w, http.StatusNotFound, "no_active_session", err.Error())
	case errors.Is(err, sessionerrors.ErrCardNotFound):
		writeSessionError(w, http.StatusNotFound, "card_not_found", err.Error())
	default:
		writeSessionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeSessionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, sessionhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
