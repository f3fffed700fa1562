package queries

import (
	"context"
	"errors"
	"testing"

	"pulsecheck/contexts/organization/directory-service/adapters/memory"
	"pulsecheck/contexts/organization/directory-service/domain/entities"
	domainerrors "pulsecheck/contexts/organization/directory-service/domain/errors"
)

func newDirectoryFixture() (*memory.Store, DirectoryQueries) {
	store := memory.NewStore()
	store.SetDepartment(entities.Department{DepartmentID: "d1", Name: "Engineering"})
	store.SetDepartment(entities.Department{DepartmentID: "d2", Name: "Operations"})
	store.SetTeam(entities.Team{TeamID: "t1", Name: "Platform", DepartmentID: "d1"})
	store.SetTeam(entities.Team{TeamID: "t2", Name: "Delivery", DepartmentID: "d1"})
	store.SetTeam(entities.Team{TeamID: "t3", Name: "Support", DepartmentID: "d2"})

	store.SetUser(entities.User{UserID: "eng", Username: "erin", Role: entities.RoleEngineer, TeamID: "t1", DepartmentID: "d1"})
	store.SetUser(entities.User{UserID: "lead", Username: "lee", Role: entities.RoleTeamLeader, TeamID: "t1", DepartmentID: "d1"})
	store.SetUser(entities.User{UserID: "dlead", Username: "dana", Role: entities.RoleDepartmentLeader, DepartmentID: "d1"})
	store.SetUser(entities.User{UserID: "mgr", Username: "morgan", Role: entities.RoleSeniorManager})
	store.SetUser(entities.User{UserID: "root", Username: "avery", Role: entities.RoleAdmin})

	return store, DirectoryQueries{Repo: store}
}

func TestTeamProfileCountsMembersAndLeaders(t *testing.T) {
	_, q := newDirectoryFixture()

	profile, err := q.TeamProfile(context.Background(), "t1")
	if err != nil {
		t.Fatalf("team profile: %v", err)
	}
	if profile.MemberCount != 2 {
		t.Fatalf("expected 2 members, got %d", profile.MemberCount)
	}
	if len(profile.Leaders) != 1 || profile.Leaders[0].UserID != "lead" {
		t.Fatalf("expected one team leader, got %+v", profile.Leaders)
	}
}

func TestDepartmentProfileCounts(t *testing.T) {
	_, q := newDirectoryFixture()

	profile, err := q.DepartmentProfile(context.Background(), "d1")
	if err != nil {
		t.Fatalf("department profile: %v", err)
	}
	if profile.TeamCount != 2 {
		t.Fatalf("expected 2 teams in d1, got %d", profile.TeamCount)
	}
	if profile.UserCount != 3 {
		t.Fatalf("expected 3 users in d1, got %d", profile.UserCount)
	}
}

func TestAuthorizeTeamManagement(t *testing.T) {
	cases := []struct {
		name    string
		userID  string
		teamID  string
		allowed bool
	}{
		{"admin manages any team", "root", "t3", true},
		{"senior manager manages any team", "mgr", "t3", true},
		{"department leader manages own department team", "dlead", "t2", true},
		{"department leader blocked outside department", "dlead", "t3", false},
		{"team leader manages own team", "lead", "t1", true},
		{"team leader blocked on other team", "lead", "t2", false},
		{"engineer never manages", "eng", "t1", false},
	}

	_, q := newDirectoryFixture()
	for _, tc := range cases {
		err := q.AuthorizeTeamManagement(context.Background(), tc.userID, tc.teamID)
		if tc.allowed && err != nil {
			t.Fatalf("%s: expected access, got %v", tc.name, err)
		}
		if !tc.allowed && !errors.Is(err, domainerrors.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v", tc.name, err)
		}
	}
}

func TestAuthorizeDepartmentSummary(t *testing.T) {
	cases := []struct {
		name         string
		userID       string
		departmentID string
		allowed      bool
	}{
		{"admin sees any department", "root", "d2", true},
		{"senior manager sees any department", "mgr", "d2", true},
		{"department leader sees own department", "dlead", "d1", true},
		{"department leader blocked elsewhere", "dlead", "d2", false},
		{"team leader blocked", "lead", "d1", false},
		{"engineer blocked", "eng", "d1", false},
	}

	_, q := newDirectoryFixture()
	for _, tc := range cases {
		err := q.AuthorizeDepartmentSummary(context.Background(), tc.userID, tc.departmentID)
		if tc.allowed && err != nil {
			t.Fatalf("%s: expected access, got %v", tc.name, err)
		}
		if !tc.allowed && !errors.Is(err, domainerrors.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v", tc.name, err)
		}
	}
}

func TestDirectoryLookupsReportMissingEntities(t *testing.T) {
	_, q := newDirectoryFixture()

	if _, err := q.GetUser(context.Background(), "ghost"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := q.TeamProfile(context.Background(), "t9"); !errors.Is(err, domainerrors.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
	if err := q.AuthorizeDepartmentSummary(context.Background(), "root", "d9"); !errors.Is(err, domainerrors.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}
