package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulsecheck/contexts/health-checks/session-service/adapters/memory"
	domainerrors "pulsecheck/contexts/health-checks/session-service/domain/errors"
)

func TestCreateSessionDefaultsName(t *testing.T) {
	store := memory.NewStore()
	uc := SessionUseCase{Sessions: store, Clock: store, IDGen: store}

	session, err := uc.CreateSession(context.Background(), CreateSessionCommand{
		Date:     time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
		Activate: true,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if session.Name != "Health Check Session" {
		t.Fatalf("expected default name, got %q", session.Name)
	}
	if session.SessionID == "" {
		t.Fatalf("expected generated session ID")
	}
	if !session.IsActive {
		t.Fatalf("expected session activated")
	}
}

func TestCreateSessionRequiresDate(t *testing.T) {
	store := memory.NewStore()
	uc := SessionUseCase{Sessions: store, Clock: store, IDGen: store}

	_, err := uc.CreateSession(context.Background(), CreateSessionCommand{Name: "No Date"})
	if !errors.Is(err, domainerrors.ErrInvalidSessionInput) {
		t.Fatalf("expected ErrInvalidSessionInput, got %v", err)
	}
}

func TestCloseSessionIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	uc := SessionUseCase{Sessions: store, Clock: store, IDGen: store}

	created, err := uc.CreateSession(context.Background(), CreateSessionCommand{
		Date:     time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
		Activate: true,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	closed, err := uc.CloseSession(context.Background(), created.SessionID)
	if err != nil {
		t.Fatalf("close session: %v", err)
	}
	if closed.IsActive {
		t.Fatalf("expected session closed")
	}

	again, err := uc.CloseSession(context.Background(), created.SessionID)
	if err != nil {
		t.Fatalf("second close must be a no-op, got %v", err)
	}
	if again.IsActive {
		t.Fatalf("expected session to stay closed")
	}
}

func TestCloseSessionUnknownID(t *testing.T) {
	store := memory.NewStore()
	uc := SessionUseCase{Sessions: store, Clock: store, IDGen: store}

	_, err := uc.CloseSession(context.Background(), "nope")
	if !errors.Is(err, domainerrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
