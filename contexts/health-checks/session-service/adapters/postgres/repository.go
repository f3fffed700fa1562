package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pulsecheck/contexts/health-checks/session-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/session-service/domain/errors"
	"pulsecheck/contexts/health-checks/session-service/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

func (r *Repository) SaveSession(ctx context.Context, session entities.Session) error {
	row := sessionModelFromEntity(session)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":        row.Name,
			"date":        row.Date,
			"description": row.Description,
			"is_active":   row.IsActive,
		}),
	}).Create(&row).Error
	if err != nil {
		return r.logError("session_repo_save_session_failed", err, "session_id", strings.TrimSpace(session.SessionID))
	}
	return nil
}

func (r *Repository) GetSession(ctx context.Context, sessionID string) (entities.Session, error) {
	var row sessionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(sessionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Session{}, domainerrors.ErrSessionNotFound
		}
		return entities.Session{}, r.logError("session_repo_get_session_failed", err, "session_id", strings.TrimSpace(sessionID))
	}
	return row.toEntity(), nil
}

func (r *Repository) ListSessions(ctx context.Context) ([]entities.Session, error) {
	var rows []sessionModel
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("session_repo_list_sessions_failed", err)
	}
	items := make([]entities.Session, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ActiveSession(ctx context.Context) (entities.Session, bool, error) {
	var row sessionModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Session{}, false, nil
		}
		return entities.Session{}, false, r.logError("session_repo_active_session_failed", err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) PreviousSession(ctx context.Context, sessionID string) (entities.Session, bool, error) {
	current, err := r.GetSession(ctx, sessionID)
	if err != nil {
		return entities.Session{}, false, err
	}
	var row sessionModel
	err = r.db.WithContext(ctx).
		Where("date < ?", current.Date).
		Order("date DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Session{}, false, nil
		}
		return entities.Session{}, false, r.logError("session_repo_previous_session_failed", err,
			"session_id", strings.TrimSpace(sessionID),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) GetCard(ctx context.Context, cardID string) (entities.HealthCheckCard, error) {
	var row cardModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(cardID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.HealthCheckCard{}, domainerrors.ErrCardNotFound
		}
		return entities.HealthCheckCard{}, r.logError("session_repo_get_card_failed", err, "card_id", strings.TrimSpace(cardID))
	}
	return row.toEntity(), nil
}

func (r *Repository) ListActiveCards(ctx context.Context) ([]entities.HealthCheckCard, error) {
	var rows []cardModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("\"order\" ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("session_repo_list_active_cards_failed", err)
	}
	items := make([]entities.HealthCheckCard, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CountDistinctVoters(ctx context.Context, sessionID string, teamID string) (int, error) {
	tx := r.db.WithContext(ctx).
		Table("votes AS v").
		Where("v.session_id = ?", strings.TrimSpace(sessionID))
	if strings.TrimSpace(teamID) != "" {
		tx = tx.
			Joins("JOIN users AS u ON u.id = v.user_id").
			Where("u.team_id = ?", strings.TrimSpace(teamID))
	}
	var count int64
	if err := tx.Distinct("v.user_id").Count(&count).Error; err != nil {
		return 0, r.logError("session_repo_count_voters_failed", err,
			"session_id", strings.TrimSpace(sessionID),
		)
	}
	return int(count), nil
}

func (r *Repository) CountEligibleUsers(ctx context.Context, teamID string, roles []string) (int, error) {
	tx := r.db.WithContext(ctx).Table("users")
	if strings.TrimSpace(teamID) != "" {
		tx = tx.Where("team_id = ?", strings.TrimSpace(teamID))
	}
	if len(roles) > 0 {
		tx = tx.Where("role IN ?", roles)
	}
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, r.logError("session_repo_count_eligible_users_failed", err)
	}
	return int(count), nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "health-checks/session-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("session repository operation failed", fields...)
	return err
}

// SystemClock satisfies the Clock port with wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator satisfies the IDGenerator port with random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type sessionModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Date        time.Time `gorm:"column:date"`
	Description string    `gorm:"column:description"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (sessionModel) TableName() string {
	return "sessions"
}

func (m sessionModel) toEntity() entities.Session {
	return entities.Session{
		SessionID:   m.ID,
		Name:        m.Name,
		Date:        m.Date.UTC(),
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func sessionModelFromEntity(session entities.Session) sessionModel {
	row := sessionModel{
		ID:          strings.TrimSpace(session.SessionID),
		Name:        session.Name,
		Date:        session.Date.UTC(),
		Description: session.Description,
		IsActive:    session.IsActive,
		CreatedAt:   session.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return row
}

type cardModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
	Icon        string `gorm:"column:icon"`
	Order       int    `gorm:"column:order"`
	Active      bool   `gorm:"column:active"`
}

func (cardModel) TableName() string {
	return "health_check_cards"
}

func (m cardModel) toEntity() entities.HealthCheckCard {
	return entities.HealthCheckCard{
		CardID:      m.ID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
		Order:       m.Order,
		Active:      m.Active,
	}
}

var _ ports.SessionRepository = (*Repository)(nil)
var _ ports.CardRepository = (*Repository)(nil)
var _ ports.ParticipationSource = (*Repository)(nil)
