package httpserver

import (
	"errors"
	"net/http"

	directoryerrors "pulsecheck/contexts/organization/directory-service/domain/errors"
	directoryhttp "pulsecheck/contexts/organization/directory-service/transport/http"
)

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.GetUserHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTeamProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.TeamProfileHandler(r.Context(), r.PathValue("team_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.ListDepartmentsHandler(r.Context())
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDepartmentProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.DepartmentProfileHandler(r.Context(), r.PathValue("department_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.ListTeamsHandler(r.Context(), r.PathValue("department_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDirectoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directoryerrors.ErrInvalidRequest):
		writeDirectoryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, directoryerrors.ErrUserNotFound):
		writeDirectoryError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, directoryerrors.ErrTeamNotFound):
		writeDirectoryError(w, http.StatusNotFound, "team_not_found", err.Error())
	case errors.Is(err, directoryerrors.ErrDepartmentNotFound):
		writeDirectoryError(w, http.StatusNotFound, "department_not_found", err.Error())
	case errors.Is(err, directoryerrors.ErrForbidden):
		writeDirectoryError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeDirectoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDirectoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, directoryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
