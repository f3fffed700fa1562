package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"pulsecheck/contexts/organization/directory-service/domain/entities"
	domainerrors "pulsecheck/contexts/organization/directory-service/domain/errors"
	"pulsecheck/contexts/organization/directory-service/ports"
)

// Store is the in-memory adapter backing directory-service tests and local
// wiring.
type Store struct {
	mu sync.RWMutex

	users       map[string]entities.User
	teams       map[string]entities.Team
	departments map[string]entities.Department
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]entities.User),
		teams:       make(map[string]entities.Team),
		departments: make(map[string]entities.Department),
	}
}

func (s *Store) SetUser(user entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[strings.TrimSpace(user.UserID)] = user
}

func (s *Store) SetTeam(team entities.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[strings.TrimSpace(team.TeamID)] = team
}

func (s *Store) SetDepartment(department entities.Department) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.departments[strings.TrimSpace(department.DepartmentID)] = department
}

func (s *Store) GetUser(_ context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[strings.TrimSpace(userID)]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetTeam(_ context.Context, teamID string) (entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[strings.TrimSpace(teamID)]
	if !ok {
		return entities.Team{}, domainerrors.ErrTeamNotFound
	}
	return team, nil
}

func (s *Store) GetDepartment(_ context.Context, departmentID string) (entities.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	department, ok := s.departments[strings.TrimSpace(departmentID)]
	if !ok {
		return entities.Department{}, domainerrors.ErrDepartmentNotFound
	}
	return department, nil
}

func (s *Store) ListDepartments(_ context.Context) ([]entities.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Department, 0, len(s.departments))
	for _, department := range s.departments {
		items = append(items, department)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) ListTeamsByDepartment(_ context.Context, departmentID string) ([]entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []entities.Team
	for _, team := range s.teams {
		if team.DepartmentID == strings.TrimSpace(departmentID) {
			items = append(items, team)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (s *Store) ListTeamMembers(_ context.Context, teamID string) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []entities.User
	for _, user := range s.users {
		if user.TeamID == strings.TrimSpace(teamID) {
			items = append(items, user)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Username < items[j].Username })
	return items, nil
}

func (s *Store) ListDepartmentUsers(_ context.Context, departmentID string) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []entities.User
	for _, user := range s.users {
		if user.DepartmentID == strings.TrimSpace(departmentID) {
			items = append(items, user)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Username < items[j].Username })
	return items, nil
}

var _ ports.DirectoryRepository = (*Store)(nil)
