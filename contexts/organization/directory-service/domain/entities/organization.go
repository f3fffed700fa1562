package entities

import "time"

type Role string

const (
	RoleEngineer         Role = "engineer"
	RoleTeamLeader       Role = "team_leader"
	RoleDepartmentLeader Role = "department_leader"
	RoleSeniorManager    Role = "senior_manager"
	RoleAdmin            Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleEngineer, RoleTeamLeader, RoleDepartmentLeader, RoleSeniorManager, RoleAdmin:
		return true
	default:
		return false
	}
}

type Department struct {
	DepartmentID string
	Name         string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Team struct {
	TeamID       string
	Name         string
	Description  string
	DepartmentID string
	CreatedAt    time.Time
}

type User struct {
	UserID       string
	Username     string
	Role         Role
	TeamID       string
	DepartmentID string
	Bio          string
}

// CanManageTeam applies the management policy: admins and senior managers
// manage any team, department leaders manage teams in their department,
// team leaders manage only their own team.
func (u User) CanManageTeam(team Team) bool {
	switch u.Role {
	case RoleAdmin, RoleSeniorManager:
		return true
	case RoleDepartmentLeader:
		return team.DepartmentID != "" && team.DepartmentID == u.DepartmentID
	case RoleTeamLeader:
		return team.TeamID != "" && team.TeamID == u.TeamID
	default:
		return false
	}
}

// CanViewDepartmentSummary restricts department dashboards: admins and
// senior managers see any department, department leaders only their own.
func (u User) CanViewDepartmentSummary(department Department) bool {
	switch u.Role {
	case RoleAdmin, RoleSeniorManager:
		return true
	case RoleDepartmentLeader:
		return department.DepartmentID != "" && department.DepartmentID == u.DepartmentID
	default:
		return false
	}
}
