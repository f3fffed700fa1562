package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pulsecheck/contexts/health-checks/summary-engine/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/summary-engine/domain/errors"
	"pulsecheck/contexts/health-checks/summary-engine/ports"
)

type summaryKey struct {
	scope     entities.ScopeType
	scopeID   string
	cardID    string
	sessionID string
}

// Store is the in-memory adapter backing summary-engine tests and local
// wiring. It implements every port the module consumes.
type Store struct {
	mu sync.RWMutex

	summaries map[summaryKey]entities.Summary
	votes     []ports.VoteProjection
	sessions  map[string]ports.SessionProjection
}

func NewStore() *Store {
	return &Store{
		summaries: make(map[summaryKey]entities.Summary),
		sessions:  make(map[string]ports.SessionProjection),
	}
}

func (s *Store) SetSession(session ports.SessionProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[strings.TrimSpace(session.SessionID)] = ports.SessionProjection{
		SessionID: strings.TrimSpace(session.SessionID),
		Date:      session.Date.UTC(),
		IsActive:  session.IsActive,
	}
}

// AddVote seeds one vote projection. Re-adding the same vote ID replaces the
// earlier projection, mirroring the voting service's upsert semantics.
func (s *Store) AddVote(vote ports.VoteProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.votes {
		if existing.VoteID == vote.VoteID && vote.VoteID != "" {
			s.votes[i] = vote
			return
		}
	}
	s.votes = append(s.votes, vote)
}

func (s *Store) SaveSummary(_ context.Context, summary entities.Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := summaryKey{
		scope:     summary.ScopeType,
		scopeID:   summary.ScopeID,
		cardID:    summary.CardID,
		sessionID: summary.SessionID,
	}
	if existing, ok := s.summaries[key]; ok {
		summary.CreatedAt = existing.CreatedAt
	}
	s.summaries[key] = summary
	return nil
}

func (s *Store) GetSummary(
	_ context.Context,
	scope entities.ScopeType,
	scopeID string,
	cardID string,
	sessionID string,
) (entities.Summary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[summaryKey{
		scope:     scope,
		scopeID:   strings.TrimSpace(scopeID),
		cardID:    strings.TrimSpace(cardID),
		sessionID: strings.TrimSpace(sessionID),
	}]
	return summary, ok, nil
}

func (s *Store) ListSummaries(
	_ context.Context,
	scope entities.ScopeType,
	scopeID string,
	sessionID string,
) ([]entities.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []entities.Summary
	for key, summary := range s.summaries {
		if key.scope == scope && key.scopeID == strings.TrimSpace(scopeID) && key.sessionID == strings.TrimSpace(sessionID) {
			items = append(items, summary)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CardID < items[j].CardID })
	return items, nil
}

func (s *Store) ListVotesForTeam(_ context.Context, teamID string, cardID string, sessionID string) ([]ports.VoteProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []ports.VoteProjection
	for _, vote := range s.votes {
		if vote.TeamID == strings.TrimSpace(teamID) && s.voteMatches(vote, cardID, sessionID) {
			items = append(items, vote)
		}
	}
	return items, nil
}

func (s *Store) ListVotesForDepartment(_ context.Context, departmentID string, cardID string, sessionID string) ([]ports.VoteProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []ports.VoteProjection
	for _, vote := range s.votes {
		if vote.DepartmentID == strings.TrimSpace(departmentID) && s.voteMatches(vote, cardID, sessionID) {
			items = append(items, vote)
		}
	}
	return items, nil
}

func (s *Store) ListVotesForCard(_ context.Context, cardID string, sessionID string) ([]ports.VoteProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []ports.VoteProjection
	for _, vote := range s.votes {
		if s.voteMatches(vote, cardID, sessionID) {
			items = append(items, vote)
		}
	}
	return items, nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (ports.SessionProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return ports.SessionProjection{}, domainerrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *Store) PreviousSession(_ context.Context, sessionID string) (ports.SessionProjection, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	current, ok := s.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return ports.SessionProjection{}, false, domainerrors.ErrSessionNotFound
	}

	var previous ports.SessionProjection
	found := false
	for _, candidate := range s.sessions {
		if !candidate.Date.Before(current.Date) {
			continue
		}
		if !found || candidate.Date.After(previous.Date) {
			previous = candidate
			found = true
		}
	}
	return previous, found, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) voteMatches(vote ports.VoteProjection, cardID string, sessionID string) bool {
	return vote.CardID == strings.TrimSpace(cardID) && vote.SessionID == strings.TrimSpace(sessionID)
}

var _ ports.SummaryRepository = (*Store)(nil)
var _ ports.VoteSource = (*Store)(nil)
var _ ports.SessionDirectory = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
