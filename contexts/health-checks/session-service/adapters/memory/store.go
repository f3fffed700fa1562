package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pulsecheck/contexts/health-checks/session-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/session-service/domain/errors"
	"pulsecheck/contexts/health-checks/session-service/ports"

	"github.com/google/uuid"
)

type participant struct {
	userID string
	teamID string
	role   string
}

type voterRecord struct {
	userID    string
	teamID    string
	sessionID string
}

// Store is the in-memory adapter backing session-service tests and local
// wiring. It implements every port the module consumes.
type Store struct {
	mu sync.RWMutex

	sessions map[string]entities.Session
	cards    map[string]entities.HealthCheckCard

	users  []participant
	voters []voterRecord
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]entities.Session),
		cards:    make(map[string]entities.HealthCheckCard),
	}
}

func (s *Store) SetCard(card entities.HealthCheckCard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards[strings.TrimSpace(card.CardID)] = card
}

func (s *Store) SetUser(userID string, teamID string, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, user := range s.users {
		if user.userID == strings.TrimSpace(userID) {
			s.users[i] = participant{userID: strings.TrimSpace(userID), teamID: strings.TrimSpace(teamID), role: strings.TrimSpace(role)}
			return
		}
	}
	s.users = append(s.users, participant{userID: strings.TrimSpace(userID), teamID: strings.TrimSpace(teamID), role: strings.TrimSpace(role)})
}

// RecordVoter marks a user as having voted in a session.
func (s *Store) RecordVoter(userID string, teamID string, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := voterRecord{userID: strings.TrimSpace(userID), teamID: strings.TrimSpace(teamID), sessionID: strings.TrimSpace(sessionID)}
	for _, existing := range s.voters {
		if existing == record {
			return
		}
	}
	s.voters = append(s.voters, record)
}

func (s *Store) SaveSession(_ context.Context, session entities.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[strings.TrimSpace(session.SessionID)] = session
	return nil
}

func (s *Store) GetSession(_ context.Context, sessionID string) (entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return entities.Session{}, domainerrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *Store) ListSessions(_ context.Context) ([]entities.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		items = append(items, session)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func (s *Store) ActiveSession(_ context.Context) (entities.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var active entities.Session
	found := false
	for _, session := range s.sessions {
		if !session.IsActive {
			continue
		}
		if !found || session.Date.After(active.Date) {
			active = session
			found = true
		}
	}
	return active, found, nil
}

func (s *Store) PreviousSession(_ context.Context, sessionID string) (entities.Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	current, ok := s.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return entities.Session{}, false, domainerrors.ErrSessionNotFound
	}
	var previous entities.Session
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

func (s *Store) GetCard(_ context.Context, cardID string) (entities.HealthCheckCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	card, ok := s.cards[strings.TrimSpace(cardID)]
	if !ok {
		return entities.HealthCheckCard{}, domainerrors.ErrCardNotFound
	}
	return card, nil
}

func (s *Store) ListActiveCards(_ context.Context) ([]entities.HealthCheckCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []entities.HealthCheckCard
	for _, card := range s.cards {
		if card.Active {
			items = append(items, card)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Order == items[j].Order {
			return items[i].CardID < items[j].CardID
		}
		return items[i].Order < items[j].Order
	})
	return items, nil
}

func (s *Store) CountDistinctVoters(_ context.Context, sessionID string, teamID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	distinct := make(map[string]bool)
	for _, record := range s.voters {
		if record.sessionID != strings.TrimSpace(sessionID) {
			continue
		}
		if strings.TrimSpace(teamID) != "" && record.teamID != strings.TrimSpace(teamID) {
			continue
		}
		distinct[record.userID] = true
	}
	return len(distinct), nil
}

func (s *Store) CountEligibleUsers(_ context.Context, teamID string, roles []string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, user := range s.users {
		if strings.TrimSpace(teamID) != "" && user.teamID != strings.TrimSpace(teamID) {
			continue
		}
		if len(roles) > 0 && !containsRole(roles, user.role) {
			continue
		}
		count++
	}
	return count, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func containsRole(roles []string, role string) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}

var _ ports.SessionRepository = (*Store)(nil)
var _ ports.CardRepository = (*Store)(nil)
var _ ports.ParticipationSource = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
