package ports

import (
	"context"

	"pulsecheck/contexts/organization/directory-service/domain/entities"
)

type DirectoryRepository interface {
	GetUser(ctx context.Context, userID string) (entities.User, error)
	GetTeam(ctx context.Context, teamID string) (entities.Team, error)
	GetDepartment(ctx context.Context, departmentID string) (entities.Department, error)
	ListDepartments(ctx context.Context) ([]entities.Department, error)
	ListTeamsByDepartment(ctx context.Context, departmentID string) ([]entities.Team, error)
	ListTeamMembers(ctx context.Context, teamID string) ([]entities.User, error)
	ListDepartmentUsers(ctx context.Context, departmentID string) ([]entities.User, error)
}
