package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pulsecheck/contexts/organization/directory-service/domain/entities"
	domainerrors "pulsecheck/contexts/organization/directory-service/domain/errors"
	"pulsecheck/contexts/organization/directory-service/ports"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) GetUser(ctx context.Context, userID string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, r.logError("directory_repo_get_user_failed", err, "user_id", strings.TrimSpace(userID))
	}
	return row.toEntity(), nil
}

func (r *Repository) GetTeam(ctx context.Context, teamID string) (entities.Team, error) {
	var row teamModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(teamID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Team{}, domainerrors.ErrTeamNotFound
		}
		return entities.Team{}, r.logError("directory_repo_get_team_failed", err, "team_id", strings.TrimSpace(teamID))
	}
	return row.toEntity(), nil
}

func (r *Repository) GetDepartment(ctx context.Context, departmentID string) (entities.Department, error) {
	var row departmentModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(departmentID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Department{}, domainerrors.ErrDepartmentNotFound
		}
		return entities.Department{}, r.logError("directory_repo_get_department_failed", err,
			"department_id", strings.TrimSpace(departmentID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListDepartments(ctx context.Context) ([]entities.Department, error) {
	var rows []departmentModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("directory_repo_list_departments_failed", err)
	}
	items := make([]entities.Department, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListTeamsByDepartment(ctx context.Context, departmentID string) ([]entities.Team, error) {
	var rows []teamModel
	if err := r.db.WithContext(ctx).
		Where("department_id = ?", strings.TrimSpace(departmentID)).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("directory_repo_list_teams_failed", err,
			"department_id", strings.TrimSpace(departmentID),
		)
	}
	items := make([]entities.Team, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListTeamMembers(ctx context.Context, teamID string) ([]entities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", strings.TrimSpace(teamID)).
		Order("username ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("directory_repo_list_team_members_failed", err, "team_id", strings.TrimSpace(teamID))
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListDepartmentUsers(ctx context.Context, departmentID string) ([]entities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Where("department_id = ?", strings.TrimSpace(departmentID)).
		Order("username ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("directory_repo_list_department_users_failed", err,
			"department_id", strings.TrimSpace(departmentID),
		)
	}
	items := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "organization/directory-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("directory repository operation failed", fields...)
	return err
}

type userModel struct {
	ID           string  `gorm:"column:id;primaryKey"`
	Username     string  `gorm:"column:username"`
	Role         string  `gorm:"column:role"`
	TeamID       *string `gorm:"column:team_id"`
	DepartmentID *string `gorm:"column:department_id"`
	Bio          string  `gorm:"column:bio"`
}

func (userModel) TableName() string {
	return "users"
}

func (m userModel) toEntity() entities.User {
	user := entities.User{
		UserID:   m.ID,
		Username: m.Username,
		Role:     entities.Role(m.Role),
		Bio:      m.Bio,
	}
	if m.TeamID != nil {
		user.TeamID = *m.TeamID
	}
	if m.DepartmentID != nil {
		user.DepartmentID = *m.DepartmentID
	}
	return user
}

type teamModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Description  string    `gorm:"column:description"`
	DepartmentID *string   `gorm:"column:department_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (teamModel) TableName() string {
	return "teams"
}

func (m teamModel) toEntity() entities.Team {
	team := entities.Team{
		TeamID:      m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.UTC(),
	}
	if m.DepartmentID != nil {
		team.DepartmentID = *m.DepartmentID
	}
	return team
}

type departmentModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (departmentModel) TableName() string {
	return "departments"
}

func (m departmentModel) toEntity() entities.Department {
	return entities.Department{
		DepartmentID: m.ID,
		Name:         m.Name,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

var _ ports.DirectoryRepository = (*Repository)(nil)
