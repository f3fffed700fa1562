package queries

import (
	"context"
	"log/slog"
	"strings"

	"pulsecheck/contexts/organization/directory-service/domain/entities"
	domainerrors "pulsecheck/contexts/organization/directory-service/domain/errors"
	"pulsecheck/contexts/organization/directory-service/ports"
)

// TeamProfile is a team with its derived membership facts.
type TeamProfile struct {
	Team        entities.Team
	MemberCount int
	Leaders     []entities.User
}

// DepartmentProfile is a department with its derived membership facts.
type DepartmentProfile struct {
	Department entities.Department
	TeamCount  int
	UserCount  int
}

type DirectoryQueries struct {
	Repo   ports.DirectoryRepository
	Logger *slog.Logger
}

func (q DirectoryQueries) GetUser(ctx context.Context, userID string) (entities.User, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.User{}, domainerrors.ErrInvalidRequest
	}
	return q.Repo.GetUser(ctx, strings.TrimSpace(userID))
}

func (q DirectoryQueries) TeamProfile(ctx context.Context, teamID string) (TeamProfile, error) {
	if strings.TrimSpace(teamID) == "" {
		return TeamProfile{}, domainerrors.ErrInvalidRequest
	}
	team, err := q.Repo.GetTeam(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return TeamProfile{}, err
	}
	members, err := q.Repo.ListTeamMembers(ctx, team.TeamID)
	if err != nil {
		return TeamProfile{}, err
	}
	var leaders []entities.User
	for _, member := range members {
		if member.Role == entities.RoleTeamLeader {
			leaders = append(leaders, member)
		}
	}
	return TeamProfile{
		Team:        team,
		MemberCount: len(members),
		Leaders:     leaders,
	}, nil
}

func (q DirectoryQueries) DepartmentProfile(ctx context.Context, departmentID string) (DepartmentProfile, error) {
	if strings.TrimSpace(departmentID) == "" {
		return DepartmentProfile{}, domainerrors.ErrInvalidRequest
	}
	department, err := q.Repo.GetDepartment(ctx, strings.TrimSpace(departmentID))
	if err != nil {
		return DepartmentProfile{}, err
	}
	teams, err := q.Repo.ListTeamsByDepartment(ctx, department.DepartmentID)
	if err != nil {
		return DepartmentProfile{}, err
	}
	users, err := q.Repo.ListDepartmentUsers(ctx, department.DepartmentID)
	if err != nil {
		return DepartmentProfile{}, err
	}
	return DepartmentProfile{
		Department: department,
		TeamCount:  len(teams),
		UserCount:  len(users),
	}, nil
}

// AuthorizeTeamManagement resolves both parties and applies the role policy.
func (q DirectoryQueries) AuthorizeTeamManagement(ctx context.Context, userID string, teamID string) error {
	user, err := q.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	team, err := q.Repo.GetTeam(ctx, strings.TrimSpace(teamID))
	if err != nil {
		return err
	}
	if !user.CanManageTeam(team) {
		return domainerrors.ErrForbidden
	}
	return nil
}

// AuthorizeDepartmentSummary gates department dashboard reads.
func (q DirectoryQueries) AuthorizeDepartmentSummary(ctx context.Context, userID string, departmentID string) error {
	user, err := q.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	department, err := q.Repo.GetDepartment(ctx, strings.TrimSpace(departmentID))
	if err != nil {
		return err
	}
	if !user.CanViewDepartmentSummary(department) {
		return domainerrors.ErrForbidden
	}
	return nil
}
