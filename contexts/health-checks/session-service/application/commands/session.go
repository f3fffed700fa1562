package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "pulsecheck/contexts/health-checks/session-service/application"
	"pulsecheck/contexts/health-checks/session-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/session-service/domain/errors"
	"pulsecheck/contexts/health-checks/session-service/ports"
)

type CreateSessionCommand struct {
	Name        string
	Date        time.Time
	Description string
	Activate    bool
}

// SessionUseCase owns session lifecycle writes.
type SessionUseCase struct {
	Sessions ports.SessionRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc SessionUseCase) CreateSession(ctx context.Context, cmd CreateSessionCommand) (entities.Session, error) {
	logger := application.ResolveLogger(uc.Logger)
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		name = "Health Check Session"
	}
	if cmd.Date.IsZero() {
		return entities.Session{}, domainerrors.ErrInvalidSessionInput
	}

	sessionID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Session{}, err
	}
	session := entities.Session{
		SessionID:   sessionID,
		Name:        name,
		Date:        cmd.Date.UTC(),
		Description: strings.TrimSpace(cmd.Description),
		IsActive:    cmd.Activate,
		CreatedAt:   uc.now(),
	}
	if err := uc.Sessions.SaveSession(ctx, session); err != nil {
		return entities.Session{}, err
	}
	logger.Info("session created",
		"event", "session_created",
		"module", "health-checks/session-service",
		"layer", "application",
		"session_id", session.SessionID,
		"date", session.Date.Format("2006-01-02"),
		"is_active", session.IsActive,
	)
	return session, nil
}

// CloseSession ends a voting period by clearing its active flag.
func (uc SessionUseCase) CloseSession(ctx context.Context, sessionID string) (entities.Session, error) {
	session, err := uc.Sessions.GetSession(ctx, strings.TrimSpace(sessionID))
	if err != nil {
		return entities.Session{}, err
	}
	if !session.IsActive {
		return session, nil
	}
	session.IsActive = false
	if err := uc.Sessions.SaveSession(ctx, session); err != nil {
		return entities.Session{}, err
	}
	application.ResolveLogger(uc.Logger).Info("session closed",
		"event", "session_closed",
		"module", "health-checks/session-service",
		"layer", "application",
		"session_id", session.SessionID,
	)
	return session, nil
}

func (uc SessionUseCase) now() time.Time {
	if uc.Clock != nil {
		return uc.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
