package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pulsecheck/contexts/health-checks/voting-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/voting-service/domain/errors"
	"pulsecheck/contexts/health-checks/voting-service/ports"

	"github.com/google/uuid"
)

type identityKey struct {
	userID    string
	cardID    string
	sessionID string
}

// Store is the in-memory adapter backing voting-service tests and local
// wiring. It implements every port the module consumes except the summary
// recomputer, which is wired from the summary engine.
type Store struct {
	mu sync.RWMutex

	votes    map[string]entities.Vote
	identity map[identityKey]string

	users    map[string]ports.UserProjection
	cards    map[string]ports.CardProjection
	sessions map[string]ports.SessionProjection
}

func NewStore() *Store {
	return &Store{
		votes:    make(map[string]entities.Vote),
		identity: make(map[identityKey]string),
		users:    make(map[string]ports.UserProjection),
		cards:    make(map[string]ports.CardProjection),
		sessions: make(map[string]ports.SessionProjection),
	}
}

func (s *Store) SetUser(user ports.UserProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[strings.TrimSpace(user.UserID)] = user
}

func (s *Store) SetCard(card ports.CardProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards[strings.TrimSpace(card.CardID)] = card
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

func (s *Store) SaveVote(_ context.Context, vote entities.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked(vote)
	return nil
}

func (s *Store) SaveVotes(_ context.Context, votes []entities.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Single lock acquisition makes the batch atomic with respect to readers.
	for _, vote := range votes {
		s.saveLocked(vote)
	}
	return nil
}

func (s *Store) saveLocked(vote entities.Vote) {
	key := identityKey{userID: vote.UserID, cardID: vote.CardID, sessionID: vote.SessionID}
	if existingID, ok := s.identity[key]; ok && existingID != vote.VoteID {
		delete(s.votes, existingID)
	}
	s.votes[vote.VoteID] = vote
	s.identity[key] = vote.VoteID
}

func (s *Store) GetVote(_ context.Context, voteID string) (entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vote, ok := s.votes[strings.TrimSpace(voteID)]
	if !ok {
		return entities.Vote{}, domainerrors.ErrVoteNotFound
	}
	return vote, nil
}

func (s *Store) GetVoteByIdentity(_ context.Context, userID string, cardID string, sessionID string) (entities.Vote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	voteID, ok := s.identity[identityKey{
		userID:    strings.TrimSpace(userID),
		cardID:    strings.TrimSpace(cardID),
		sessionID: strings.TrimSpace(sessionID),
	}]
	if !ok {
		return entities.Vote{}, false, nil
	}
	return s.votes[voteID], true, nil
}

func (s *Store) ListVotesByUserSession(_ context.Context, userID string, sessionID string) ([]entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []entities.Vote
	for _, vote := range s.votes {
		if vote.UserID == strings.TrimSpace(userID) && vote.SessionID == strings.TrimSpace(sessionID) {
			items = append(items, vote)
		}
	}
	sortVotes(items)
	return items, nil
}

func (s *Store) ListVotesByCardSession(_ context.Context, cardID string, sessionID string) ([]entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []entities.Vote
	for _, vote := range s.votes {
		if vote.CardID == strings.TrimSpace(cardID) && vote.SessionID == strings.TrimSpace(sessionID) {
			items = append(items, vote)
		}
	}
	sortVotes(items)
	return items, nil
}

func (s *Store) GetUser(_ context.Context, userID string) (ports.UserProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[strings.TrimSpace(userID)]
	if !ok {
		return ports.UserProjection{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetCard(_ context.Context, cardID string) (ports.CardProjection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	card, ok := s.cards[strings.TrimSpace(cardID)]
	if !ok {
		return ports.CardProjection{}, domainerrors.ErrCardNotFound
	}
	return card, nil
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

func (s *Store) ActiveSession(_ context.Context) (ports.SessionProjection, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var active ports.SessionProjection
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

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func sortVotes(votes []entities.Vote) {
	sort.Slice(votes, func(i, j int) bool { return votes[i].CardID < votes[j].CardID })
}

var _ ports.VoteRepository = (*Store)(nil)
var _ ports.MemberDirectory = (*Store)(nil)
var _ ports.CardCatalog = (*Store)(nil)
var _ ports.SessionDirectory = (*Store)(nil)
var _ ports.Clock = (*Store)(nil)
var _ ports.IDGenerator = (*Store)(nil)
