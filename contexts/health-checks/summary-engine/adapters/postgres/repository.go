package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pulsecheck/contexts/health-checks/summary-engine/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/summary-engine/domain/errors"
	"pulsecheck/contexts/health-checks/summary-engine/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists summaries and reads pooled votes through gorm.
// Team and department summaries live in separate tables with a composite
// key per (scope, card, session), matching the upsert-on-recompute model.
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

func (r *Repository) SaveSummary(ctx context.Context, summary entities.Summary) error {
	assignments := clause.Assignments(map[string]any{
		"average_vote":     string(summary.AverageVote),
		"progress_summary": string(summary.ProgressSummary),
		"green_percentage": summary.GreenPercentage,
		"amber_percentage": summary.AmberPercentage,
		"red_percentage":   summary.RedPercentage,
		"updated_at":       summary.UpdatedAt,
	})

	switch summary.ScopeType {
	case entities.ScopeTeam:
		row := teamSummaryModelFromEntity(summary)
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "team_id"}, {Name: "card_id"}, {Name: "session_id"},
			},
			DoUpdates: assignments,
		}).Create(&row).Error
		if err != nil {
			return r.logError("summary_repo_save_team_summary_failed", err,
				"team_id", summary.ScopeID,
				"card_id", summary.CardID,
				"session_id", summary.SessionID,
			)
		}
		return nil
	case entities.ScopeDepartment:
		row := departmentSummaryModelFromEntity(summary)
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "department_id"}, {Name: "card_id"}, {Name: "session_id"},
			},
			DoUpdates: assignments,
		}).Create(&row).Error
		if err != nil {
			return r.logError("summary_repo_save_department_summary_failed", err,
				"department_id", summary.ScopeID,
				"card_id", summary.CardID,
				"session_id", summary.SessionID,
			)
		}
		return nil
	default:
		return domainerrors.ErrInvalidScope
	}
}

func (r *Repository) GetSummary(
	ctx context.Context,
	scope entities.ScopeType,
	scopeID string,
	cardID string,
	sessionID string,
) (entities.Summary, bool, error) {
	switch scope {
	case entities.ScopeTeam:
		var row teamSummaryModel
		err := r.db.WithContext(ctx).
			Where("team_id = ?", strings.TrimSpace(scopeID)).
			Where("card_id = ?", strings.TrimSpace(cardID)).
			Where("session_id = ?", strings.TrimSpace(sessionID)).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.Summary{}, false, nil
			}
			return entities.Summary{}, false, r.logError("summary_repo_get_team_summary_failed", err,
				"team_id", strings.TrimSpace(scopeID),
			)
		}
		return row.toEntity(), true, nil
	case entities.ScopeDepartment:
		var row departmentSummaryModel
		err := r.db.WithContext(ctx).
			Where("department_id = ?", strings.TrimSpace(scopeID)).
			Where("card_id = ?", strings.TrimSpace(cardID)).
			Where("session_id = ?", strings.TrimSpace(sessionID)).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.Summary{}, false, nil
			}
			return entities.Summary{}, false, r.logError("summary_repo_get_department_summary_failed", err,
				"department_id", strings.TrimSpace(scopeID),
			)
		}
		return row.toEntity(), true, nil
	default:
		return entities.Summary{}, false, domainerrors.ErrInvalidScope
	}
}

func (r *Repository) ListSummaries(
	ctx context.Context,
	scope entities.ScopeType,
	scopeID string,
	sessionID string,
) ([]entities.Summary, error) {
	switch scope {
	case entities.ScopeTeam:
		var rows []teamSummaryModel
		if err := r.db.WithContext(ctx).
			Where("team_id = ?", strings.TrimSpace(scopeID)).
			Where("session_id = ?", strings.TrimSpace(sessionID)).
			Order("card_id ASC").
			Find(&rows).Error; err != nil {
			return nil, r.logError("summary_repo_list_team_summaries_failed", err,
				"team_id", strings.TrimSpace(scopeID),
			)
		}
		items := make([]entities.Summary, 0, len(rows))
		for _, row := range rows {
			items = append(items, row.toEntity())
		}
		return items, nil
	case entities.ScopeDepartment:
		var rows []departmentSummaryModel
		if err := r.db.WithContext(ctx).
			Where("department_id = ?", strings.TrimSpace(scopeID)).
			Where("session_id = ?", strings.TrimSpace(sessionID)).
			Order("card_id ASC").
			Find(&rows).Error; err != nil {
			return nil, r.logError("summary_repo_list_department_summaries_failed", err,
				"department_id", strings.TrimSpace(scopeID),
			)
		}
		items := make([]entities.Summary, 0, len(rows))
		for _, row := range rows {
			items = append(items, row.toEntity())
		}
		return items, nil
	default:
		return nil, domainerrors.ErrInvalidScope
	}
}

func (r *Repository) ListVotesForTeam(ctx context.Context, teamID string, cardID string, sessionID string) ([]ports.VoteProjection, error) {
	var rows []voteProjectionRow
	err := r.db.WithContext(ctx).
		Table("votes AS v").
		Select("v.id AS vote_id, v.user_id, u.team_id, u.department_id, v.card_id, v.session_id, v.value").
		Joins("JOIN users AS u ON u.id = v.user_id").
		Where("u.team_id = ?", strings.TrimSpace(teamID)).
		Where("v.card_id = ?", strings.TrimSpace(cardID)).
		Where("v.session_id = ?", strings.TrimSpace(sessionID)).
		Order("v.created_at ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, r.logError("summary_repo_list_team_votes_failed", err,
			"team_id", strings.TrimSpace(teamID),
		)
	}
	return toVoteProjections(rows), nil
}

func (r *Repository) ListVotesForDepartment(ctx context.Context, departmentID string, cardID string, sessionID string) ([]ports.VoteProjection, error) {
	var rows []voteProjectionRow
	err := r.db.WithContext(ctx).
		Table("votes AS v").
		Select("v.id AS vote_id, v.user_id, u.team_id, u.department_id, v.card_id, v.session_id, v.value").
		Joins("JOIN users AS u ON u.id = v.user_id").
		Where("u.department_id = ?", strings.TrimSpace(departmentID)).
		Where("v.card_id = ?", strings.TrimSpace(cardID)).
		Where("v.session_id = ?", strings.TrimSpace(sessionID)).
		Order("v.created_at ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, r.logError("summary_repo_list_department_votes_failed", err,
			"department_id", strings.TrimSpace(departmentID),
		)
	}
	return toVoteProjections(rows), nil
}

func (r *Repository) ListVotesForCard(ctx context.Context, cardID string, sessionID string) ([]ports.VoteProjection, error) {
	var rows []voteProjectionRow
	err := r.db.WithContext(ctx).
		Table("votes AS v").
		Select("v.id AS vote_id, v.user_id, u.team_id, u.department_id, v.card_id, v.session_id, v.value").
		Joins("JOIN users AS u ON u.id = v.user_id").
		Where("v.card_id = ?", strings.TrimSpace(cardID)).
		Where("v.session_id = ?", strings.TrimSpace(sessionID)).
		Order("v.created_at ASC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, r.logError("summary_repo_list_card_votes_failed", err,
			"card_id", strings.TrimSpace(cardID),
		)
	}
	return toVoteProjections(rows), nil
}

func (r *Repository) GetSession(ctx context.Context, sessionID string) (ports.SessionProjection, error) {
	var row sessionProjectionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(sessionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SessionProjection{}, domainerrors.ErrSessionNotFound
		}
		return ports.SessionProjection{}, r.logError("summary_repo_get_session_failed", err,
			"session_id", strings.TrimSpace(sessionID),
		)
	}
	return row.toProjection(), nil
}

func (r *Repository) PreviousSession(ctx context.Context, sessionID string) (ports.SessionProjection, bool, error) {
	current, err := r.GetSession(ctx, sessionID)
	if err != nil {
		return ports.SessionProjection{}, false, err
	}

	var row sessionProjectionModel
	err = r.db.WithContext(ctx).
		Where("date < ?", current.Date).
		Order("date DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SessionProjection{}, false, nil
		}
		return ports.SessionProjection{}, false, r.logError("summary_repo_previous_session_failed", err,
			"session_id", strings.TrimSpace(sessionID),
		)
	}
	return row.toProjection(), true, nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "health-checks/summary-engine",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("summary repository operation failed", fields...)
	return err
}

// SystemClock satisfies the Clock port with wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type teamSummaryModel struct {
	TeamID          string    `gorm:"column:team_id;primaryKey"`
	CardID          string    `gorm:"column:card_id;primaryKey"`
	SessionID       string    `gorm:"column:session_id;primaryKey"`
	AverageVote     string    `gorm:"column:average_vote"`
	ProgressSummary string    `gorm:"column:progress_summary"`
	GreenPercentage float64   `gorm:"column:green_percentage"`
	AmberPercentage float64   `gorm:"column:amber_percentage"`
	RedPercentage   float64   `gorm:"column:red_percentage"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (teamSummaryModel) TableName() string {
	return "team_summaries"
}

func (m teamSummaryModel) toEntity() entities.Summary {
	return entities.Summary{
		ScopeType:       entities.ScopeTeam,
		ScopeID:         m.TeamID,
		CardID:          m.CardID,
		SessionID:       m.SessionID,
		AverageVote:     entities.VoteValue(m.AverageVote),
		ProgressSummary: entities.ProgressNote(m.ProgressSummary),
		GreenPercentage: m.GreenPercentage,
		AmberPercentage: m.AmberPercentage,
		RedPercentage:   m.RedPercentage,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

func teamSummaryModelFromEntity(summary entities.Summary) teamSummaryModel {
	return teamSummaryModel{
		TeamID:          summary.ScopeID,
		CardID:          summary.CardID,
		SessionID:       summary.SessionID,
		AverageVote:     string(summary.AverageVote),
		ProgressSummary: string(summary.ProgressSummary),
		GreenPercentage: summary.GreenPercentage,
		AmberPercentage: summary.AmberPercentage,
		RedPercentage:   summary.RedPercentage,
		CreatedAt:       summary.CreatedAt.UTC(),
		UpdatedAt:       summary.UpdatedAt.UTC(),
	}
}

type departmentSummaryModel struct {
	DepartmentID    string    `gorm:"column:department_id;primaryKey"`
	CardID          string    `gorm:"column:card_id;primaryKey"`
	SessionID       string    `gorm:"column:session_id;primaryKey"`
	AverageVote     string    `gorm:"column:average_vote"`
	ProgressSummary string    `gorm:"column:progress_summary"`
	GreenPercentage float64   `gorm:"column:green_percentage"`
	AmberPercentage float64   `gorm:"column:amber_percentage"`
	RedPercentage   float64   `gorm:"column:red_percentage"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (departmentSummaryModel) TableName() string {
	return "department_summaries"
}

func (m departmentSummaryModel) toEntity() entities.Summary {
	return entities.Summary{
		ScopeType:       entities.ScopeDepartment,
		ScopeID:         m.DepartmentID,
		CardID:          m.CardID,
		SessionID:       m.SessionID,
		AverageVote:     entities.VoteValue(m.AverageVote),
		ProgressSummary: entities.ProgressNote(m.ProgressSummary),
		GreenPercentage: m.GreenPercentage,
		AmberPercentage: m.AmberPercentage,
		RedPercentage:   m.RedPercentage,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

func departmentSummaryModelFromEntity(summary entities.Summary) departmentSummaryModel {
	return departmentSummaryModel{
		DepartmentID:    summary.ScopeID,
		CardID:          summary.CardID,
		SessionID:       summary.SessionID,
		AverageVote:     string(summary.AverageVote),
		ProgressSummary: string(summary.ProgressSummary),
		GreenPercentage: summary.GreenPercentage,
		AmberPercentage: summary.AmberPercentage,
		RedPercentage:   summary.RedPercentage,
		CreatedAt:       summary.CreatedAt.UTC(),
		UpdatedAt:       summary.UpdatedAt.UTC(),
	}
}

type voteProjectionRow struct {
	VoteID       string `gorm:"column:vote_id"`
	UserID       string `gorm:"column:user_id"`
	TeamID       string `gorm:"column:team_id"`
	DepartmentID string `gorm:"column:department_id"`
	CardID       string `gorm:"column:card_id"`
	SessionID    string `gorm:"column:session_id"`
	Value        string `gorm:"column:value"`
}

func toVoteProjections(rows []voteProjectionRow) []ports.VoteProjection {
	items := make([]ports.VoteProjection, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.VoteProjection{
			VoteID:       row.VoteID,
			UserID:       row.UserID,
			TeamID:       row.TeamID,
			DepartmentID: row.DepartmentID,
			CardID:       row.CardID,
			SessionID:    row.SessionID,
			Value:        row.Value,
		})
	}
	return items
}

type sessionProjectionModel struct {
	ID       string    `gorm:"column:id;primaryKey"`
	Date     time.Time `gorm:"column:date"`
	IsActive bool      `gorm:"column:is_active"`
}

func (sessionProjectionModel) TableName() string {
	return "sessions"
}

func (m sessionProjectionModel) toProjection() ports.SessionProjection {
	return ports.SessionProjection{
		SessionID: m.ID,
		Date:      m.Date.UTC(),
		IsActive:  m.IsActive,
	}
}

var _ ports.SummaryRepository = (*Repository)(nil)
var _ ports.VoteSource = (*Repository)(nil)
var _ ports.SessionDirectory = (*Repository)(nil)
