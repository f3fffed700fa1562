package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pulsecheck/contexts/health-checks/voting-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/voting-service/domain/errors"
	"pulsecheck/contexts/health-checks/voting-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *Repository) SaveVote(ctx context.Context, vote entities.Vote) error {
	return r.saveVote(r.db.WithContext(ctx), vote)
}

// SaveVotes writes a bulk submission inside one transaction so the whole
// submission commits or none of it does.
func (r *Repository) SaveVotes(ctx context.Context, votes []entities.Vote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, vote := range votes {
			if err := r.saveVote(tx, vote); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) saveVote(tx *gorm.DB, vote entities.Vote) error {
	row := voteModelFromEntity(vote)
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "card_id"}, {Name: "session_id"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"value":         row.Value,
			"progress_note": row.ProgressNote,
			"comment":       row.Comment,
			"updated_at":    row.UpdatedAt,
		}),
	}).Create(&row).Error
	if err != nil {
		if isUniqueViolation(err) {
			// Conflict on the primary key rather than the identity key.
			return domainerrors.ErrInvalidVoteInput
		}
		return r.logError("voting_repo_save_vote_failed", err,
			"vote_id", strings.TrimSpace(vote.VoteID),
			"user_id", strings.TrimSpace(vote.UserID),
			"card_id", strings.TrimSpace(vote.CardID),
		)
	}
	return nil
}

func (r *Repository) GetVote(ctx context.Context, voteID string) (entities.Vote, error) {
	var row voteModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(voteID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Vote{}, domainerrors.ErrVoteNotFound
		}
		return entities.Vote{}, r.logError("voting_repo_get_vote_failed", err, "vote_id", strings.TrimSpace(voteID))
	}
	return row.toEntity(), nil
}

func (r *Repository) GetVoteByIdentity(ctx context.Context, userID string, cardID string, sessionID string) (entities.Vote, bool, error) {
	var row voteModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("card_id = ?", strings.TrimSpace(cardID)).
		Where("session_id = ?", strings.TrimSpace(sessionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Vote{}, false, nil
		}
		return entities.Vote{}, false, r.logError("voting_repo_get_vote_by_identity_failed", err,
			"user_id", strings.TrimSpace(userID),
			"card_id", strings.TrimSpace(cardID),
			"session_id", strings.TrimSpace(sessionID),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListVotesByUserSession(ctx context.Context, userID string, sessionID string) ([]entities.Vote, error) {
	var rows []voteModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		Where("session_id = ?", strings.TrimSpace(sessionID)).
		Order("card_id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_user_session_votes_failed", err,
			"user_id", strings.TrimSpace(userID),
			"session_id", strings.TrimSpace(sessionID),
		)
	}
	return toVoteEntities(rows), nil
}

func (r *Repository) ListVotesByCardSession(ctx context.Context, cardID string, sessionID string) ([]entities.Vote, error) {
	var rows []voteModel
	if err := r.db.WithContext(ctx).
		Where("card_id = ?", strings.TrimSpace(cardID)).
		Where("session_id = ?", strings.TrimSpace(sessionID)).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_card_session_votes_failed", err,
			"card_id", strings.TrimSpace(cardID),
			"session_id", strings.TrimSpace(sessionID),
		)
	}
	return toVoteEntities(rows), nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (ports.UserProjection, error) {
	var row userProjectionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserProjection{}, domainerrors.ErrUserNotFound
		}
		return ports.UserProjection{}, r.logError("voting_repo_get_user_failed", err, "user_id", strings.TrimSpace(userID))
	}
	return ports.UserProjection{
		UserID:       row.ID,
		Username:     row.Username,
		Role:         row.Role,
		TeamID:       stringValue(row.TeamID),
		DepartmentID: stringValue(row.DepartmentID),
	}, nil
}

func (r *Repository) GetCard(ctx context.Context, cardID string) (ports.CardProjection, error) {
	var row cardProjectionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(cardID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CardProjection{}, domainerrors.ErrCardNotFound
		}
		return ports.CardProjection{}, r.logError("voting_repo_get_card_failed", err, "card_id", strings.TrimSpace(cardID))
	}
	return ports.CardProjection{
		CardID: row.ID,
		Name:   row.Name,
		Active: row.Active,
	}, nil
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
		return ports.SessionProjection{}, r.logError("voting_repo_get_session_failed", err, "session_id", strings.TrimSpace(sessionID))
	}
	return row.toProjection(), nil
}

func (r *Repository) ActiveSession(ctx context.Context) (ports.SessionProjection, bool, error) {
	var row sessionProjectionModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SessionProjection{}, false, nil
		}
		return ports.SessionProjection{}, false, r.logError("voting_repo_active_session_failed", err)
	}
	return row.toProjection(), true, nil
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
		return ports.SessionProjection{}, false, r.logError("voting_repo_previous_session_failed", err,
			"session_id", strings.TrimSpace(sessionID),
		)
	}
	return row.toProjection(), true, nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "health-checks/voting-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("voting repository operation failed", fields...)
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

type voteModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	UserID       string    `gorm:"column:user_id"`
	CardID       string    `gorm:"column:card_id"`
	SessionID    string    `gorm:"column:session_id"`
	Value        string    `gorm:"column:value"`
	ProgressNote string    `gorm:"column:progress_note"`
	Comment      string    `gorm:"column:comment"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (voteModel) TableName() string {
	return "votes"
}

func (m voteModel) toEntity() entities.Vote {
	return entities.Vote{
		VoteID:       m.ID,
		UserID:       m.UserID,
		CardID:       m.CardID,
		SessionID:    m.SessionID,
		Value:        entities.VoteValue(m.Value),
		ProgressNote: entities.ProgressNote(m.ProgressNote),
		Comment:      m.Comment,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func voteModelFromEntity(vote entities.Vote) voteModel {
	row := voteModel{
		ID:           strings.TrimSpace(vote.VoteID),
		UserID:       strings.TrimSpace(vote.UserID),
		CardID:       strings.TrimSpace(vote.CardID),
		SessionID:    strings.TrimSpace(vote.SessionID),
		Value:        string(vote.Value),
		ProgressNote: string(vote.ProgressNote),
		Comment:      vote.Comment,
		CreatedAt:    vote.CreatedAt.UTC(),
		UpdatedAt:    vote.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func toVoteEntities(rows []voteModel) []entities.Vote {
	items := make([]entities.Vote, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

type userProjectionModel struct {
	ID           string  `gorm:"column:id;primaryKey"`
	Username     string  `gorm:"column:username"`
	Role         string  `gorm:"column:role"`
	TeamID       *string `gorm:"column:team_id"`
	DepartmentID *string `gorm:"column:department_id"`
}

func (userProjectionModel) TableName() string {
	return "users"
}

type cardProjectionModel struct {
	ID     string `gorm:"column:id;primaryKey"`
	Name   string `gorm:"column:name"`
	Active bool   `gorm:"column:active"`
}

func (cardProjectionModel) TableName() string {
	return "health_check_cards"
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

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.VoteRepository = (*Repository)(nil)
var _ ports.MemberDirectory = (*Repository)(nil)
var _ ports.CardCatalog = (*Repository)(nil)
var _ ports.SessionDirectory = (*Repository)(nil)
