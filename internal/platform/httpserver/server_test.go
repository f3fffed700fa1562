package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sessionservice "pulsecheck/contexts/health-checks/session-service"
	sessionentities "pulsecheck/contexts/health-checks/session-service/domain/entities"
	summaryengine "pulsecheck/contexts/health-checks/summary-engine"
	summaryentities "pulsecheck/contexts/health-checks/summary-engine/domain/entities"
	summaryports "pulsecheck/contexts/health-checks/summary-engine/ports"
	votingservice "pulsecheck/contexts/health-checks/voting-service"
	votingports "pulsecheck/contexts/health-checks/voting-service/ports"
	votinghttp "pulsecheck/contexts/health-checks/voting-service/transport/http"
	directoryservice "pulsecheck/contexts/organization/directory-service"
	directoryentities "pulsecheck/contexts/organization/directory-service/domain/entities"
)

func newTestServer() *Server {
	summaries := summaryengine.NewInMemoryModule(nil)
	voting := votingservice.NewInMemoryModule(summaries.Recompute, nil)
	sessions := sessionservice.NewInMemoryModule(nil)
	directory := directoryservice.NewInMemoryModule(nil)

	sessionDate := time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)
	voting.Store.SetUser(votingports.UserProjection{
		UserID:       "u1",
		Username:     "erin",
		Role:         "engineer",
		TeamID:       "t1",
		DepartmentID: "d1",
	})
	voting.Store.SetCard(votingports.CardProjection{CardID: "c1", Name: "Delivering Value", Active: true})
	voting.Store.SetSession(votingports.SessionProjection{SessionID: "s1", Date: sessionDate, IsActive: true})
	summaries.Store.SetSession(summaryports.SessionProjection{SessionID: "s1", Date: sessionDate, IsActive: true})
	_ = sessions.Store.SaveSession(context.Background(), sessionentities.Session{
		SessionID: "s1",
		Name:      "Q1 Check",
		Date:      sessionDate,
		IsActive:  true,
	})

	directory.Store.SetDepartment(directoryentities.Department{DepartmentID: "d1", Name: "Engineering"})
	directory.Store.SetTeam(directoryentities.Team{TeamID: "t1", Name: "Platform", DepartmentID: "d1"})
	directory.Store.SetUser(directoryentities.User{UserID: "u1", Username: "erin", Role: directoryentities.RoleEngineer, TeamID: "t1", DepartmentID: "d1"})
	directory.Store.SetUser(directoryentities.User{UserID: "lead", Username: "lee", Role: directoryentities.RoleTeamLeader, TeamID: "t1", DepartmentID: "d1"})
	directory.Store.SetUser(directoryentities.User{UserID: "root", Username: "avery", Role: directoryentities.RoleAdmin})

	return New(voting, sessions, summaries, directory, nil, ":0")
}

func TestCastVoteRequiresUserHeader(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/votes", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCastVoteCreateThenUpdateStatusCodes(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"card_id":"c1","value":"green","progress_note":"better"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/votes", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "u1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 for first vote, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/votes", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "u1")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for re-vote, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp votinghttp.VoteResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.WasUpdate {
		t.Fatalf("expected was_update on re-vote, got %+v", resp)
	}
}

func TestBulkVoteEnumeratesInvalidCards(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"items":[
		{"card_id":"c1","value":"green","progress_note":"better"},
		{"card_id":"missing","value":"green","progress_note":"better"},
		{"card_id":"c1","value":"blue","progress_note":"better"}
	]}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/votes/bulk", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "u1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp votinghttp.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != "invalid_cards" {
		t.Fatalf("expected invalid_cards code, got %q", resp.Code)
	}
	if len(resp.InvalidCards) == 0 {
		t.Fatalf("expected invalid cards enumerated, got %s", rr.Body.String())
	}
}

func TestTeamDashboardAuthorization(t *testing.T) {
	server := newTestServer()
	seed := server.summaries.Store
	_ = seed.SaveSummary(context.Background(), summaryentities.Summary{
		ScopeType:   summaryentities.ScopeTeam,
		ScopeID:     "t1",
		CardID:      "c1",
		SessionID:   "s1",
		AverageVote: summaryentities.VoteGreen,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/t1/summary?session_id=s1", nil)
	req.Header.Set("X-User-Id", "u1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for engineer, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/teams/t1/summary?session_id=s1", nil)
	req.Header.Set("X-User-Id", "lead")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for team leader, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreateSessionRequiresAdmin(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Q2 Check","date":"2026-05-05","activate":true}`)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "lead")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d body=%s", rr.Code, rr.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/sessions", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "root")
	rr = httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 for admin, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestActiveSessionEndpoint(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/active", nil)
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}
