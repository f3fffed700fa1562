package httpadapter

import (
	"context"
	"log/slog"

	"pulsecheck/contexts/organization/directory-service/application/queries"
	"pulsecheck/contexts/organization/directory-service/domain/entities"
	httptransport "pulsecheck/contexts/organization/directory-service/transport/http"
)

type Handler struct {
	Queries queries.DirectoryQueries
	Logger  *slog.Logger
}

func (h Handler) GetUserHandler(ctx context.Context, userID string) (httptransport.UserResponse, error) {
	user, err := h.Queries.GetUser(ctx, userID)
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return mapUser(user), nil
}

func (h Handler) TeamProfileHandler(ctx context.Context, teamID string) (httptransport.TeamProfileResponse, error) {
	profile, err := h.Queries.TeamProfile(ctx, teamID)
	if err != nil {
		return httptransport.TeamProfileResponse{}, err
	}
	return mapTeamProfile(profile), nil
}

func (h Handler) DepartmentProfileHandler(ctx context.Context, departmentID string) (httptransport.DepartmentProfileResponse, error) {
	profile, err := h.Queries.DepartmentProfile(ctx, departmentID)
	if err != nil {
		return httptransport.DepartmentProfileResponse{}, err
	}
	return mapDepartmentProfile(profile), nil
}

func (h Handler) ListDepartmentsHandler(ctx context.Context) (httptransport.DepartmentListResponse, error) {
	departments, err := h.Queries.Repo.ListDepartments(ctx)
	if err != nil {
		return httptransport.DepartmentListResponse{}, err
	}
	items := make([]httptransport.DepartmentProfileResponse, 0, len(departments))
	for _, department := range departments {
		profile, err := h.Queries.DepartmentProfile(ctx, department.DepartmentID)
		if err != nil {
			return httptransport.DepartmentListResponse{}, err
		}
		items = append(items, mapDepartmentProfile(profile))
	}
	return httptransport.DepartmentListResponse{Items: items}, nil
}

func (h Handler) ListTeamsHandler(ctx context.Context, departmentID string) (httptransport.TeamListResponse, error) {
	teams, err := h.Queries.Repo.ListTeamsByDepartment(ctx, departmentID)
	if err != nil {
		return httptransport.TeamListResponse{}, err
	}
	items := make([]httptransport.TeamProfileResponse, 0, len(teams))
	for _, team := range teams {
		profile, err := h.Queries.TeamProfile(ctx, team.TeamID)
		if err != nil {
			return httptransport.TeamListResponse{}, err
		}
		items = append(items, mapTeamProfile(profile))
	}
	return httptransport.TeamListResponse{Items: items}, nil
}

func (h Handler) AuthorizeTeamManagementHandler(ctx context.Context, userID string, teamID string) error {
	return h.Queries.AuthorizeTeamManagement(ctx, userID, teamID)
}

func (h Handler) AuthorizeDepartmentSummaryHandler(ctx context.Context, userID string, departmentID string) error {
	return h.Queries.AuthorizeDepartmentSummary(ctx, userID, departmentID)
}

func mapUser(user entities.User) httptransport.UserResponse {
	return httptransport.UserResponse{
		UserID:       user.UserID,
		Username:     user.Username,
		Role:         string(user.Role),
		TeamID:       user.TeamID,
		DepartmentID: user.DepartmentID,
		Bio:          user.Bio,
	}
}

func mapTeamProfile(profile queries.TeamProfile) httptransport.TeamProfileResponse {
	leaders := make([]httptransport.UserResponse, 0, len(profile.Leaders))
	for _, leader := range profile.Leaders {
		leaders = append(leaders, mapUser(leader))
	}
	return httptransport.TeamProfileResponse{
		TeamID:       profile.Team.TeamID,
		Name:         profile.Team.Name,
		Description:  profile.Team.Description,
		DepartmentID: profile.Team.DepartmentID,
		MemberCount:  profile.MemberCount,
		Leaders:      leaders,
	}
}

func mapDepartmentProfile(profile queries.DepartmentProfile) httptransport.DepartmentProfileResponse {
	return httptransport.DepartmentProfileResponse{
		DepartmentID: profile.Department.DepartmentID,
		Name:         profile.Department.Name,
		Description:  profile.Department.Description,
		TeamCount:    profile.TeamCount,
		UserCount:    profile.UserCount,
	}
}
