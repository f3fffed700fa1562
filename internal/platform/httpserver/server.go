package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	sessionservice "pulsecheck/contexts/health-checks/session-service"
	summaryengine "pulsecheck/contexts/health-checks/summary-engine"
	votingservice "pulsecheck/contexts/health-checks/voting-service"
	directoryservice "pulsecheck/contexts/organization/directory-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "pulsecheck/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	voting    votingservice.Module
	sessions  sessionservice.Module
	summaries summaryengine.Module
	directory directoryservice.Module
}

func New(
	voting votingservice.Module,
	sessions sessionservice.Module,
	summaries summaryengine.Module,
	directory directoryservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		voting:    voting,
		sessions:  sessions,
		summaries: summaries,
		directory: directory,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/v1/votes", s.handleCastVote)
	s.mux.HandleFunc("POST /api/v1/votes/bulk", s.handleCastVotes)
	s.mux.HandleFunc("GET /api/v1/votes/mine", s.handleMyVotes)

	s.mux.HandleFunc("POST /api/v1/sessions", s.handleCreateSession)
	s.mux.HandleFunc("POST /api/v1/sessions/{session_id}/close", s.handleCloseSession)
	s.mux.HandleFunc("GET /api/v1/sessions", s.handleListSessions)
	s.mux.HandleFunc("GET /api/v1/sessions/active", s.handleActiveSession)
	s.mux.HandleFunc("GET /api/v1/sessions/{session_id}/participation", s.handleParticipation)
	s.mux.HandleFunc("GET /api/v1/cards", s.handleListCards)
	s.mux.HandleFunc("GET /api/v1/cards/{card_id}", s.handleGetCard)

	s.mux.HandleFunc("GET /api/v1/teams/{team_id}/summary", s.handleTeamDashboard)
	s.mux.HandleFunc("GET /api/v1/teams/{team_id}/health", s.handleTeamHealth)
	s.mux.HandleFunc("GET /api/v1/departments/{department_id}/summary", s.handleDepartmentDashboard)
	s.mux.HandleFunc("GET /api/v1/cards/{card_id}/distribution", s.handleCardDistribution)

	s.mux.HandleFunc("GET /api/v1/users/{user_id}", s.handleGetUser)
	s.mux.HandleFunc("GET /api/v1/teams/{team_id}", s.handleTeamProfile)
	s.mux.HandleFunc("GET /api/v1/departments", s.handleListDepartments)
	s.mux.HandleFunc("GET /api/v1/departments/{department_id}", s.handleDepartmentProfile)
	s.mux.HandleFunc("GET /api/v1/departments/{department_id}/teams", s.handleListTeams)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// requestUserID resolves the acting user from the X-User-Id header.
func requestUserID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}
