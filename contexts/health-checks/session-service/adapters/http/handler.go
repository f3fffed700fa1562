package httpadapter

import (
	"context"
	"log/slog"
	"math"
	"time"

	"pulsecheck/contexts/health-checks/session-service/application/commands"
	"pulsecheck/contexts/health-checks/session-service/application/queries"
	"pulsecheck/contexts/health-checks/session-service/domain/entities"
	domainerrors "pulsecheck/contexts/health-checks/session-service/domain/errors"
	httptransport "pulsecheck/contexts/health-checks/session-service/transport/http"
)

const dateLayout = "2006-01-02"

type Handler struct {
	Sessions commands.SessionUseCase
	Queries  queries.SessionQueries
	Logger   *slog.Logger
}

func (h Handler) CreateSessionHandler(ctx context.Context, req httptransport.CreateSessionRequest) (httptransport.SessionResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return httptransport.SessionResponse{}, domainerrors.ErrInvalidSessionInput
	}
	session, err := h.Sessions.CreateSession(ctx, commands.CreateSessionCommand{
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
		Activate:    req.Activate,
	})
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return mapSession(session), nil
}

func (h Handler) CloseSessionHandler(ctx context.Context, sessionID string) (httptransport.SessionResponse, error) {
	session, err := h.Sessions.CloseSession(ctx, sessionID)
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return mapSession(session), nil
}

func (h Handler) ActiveSessionHandler(ctx context.Context) (httptransport.SessionResponse, error) {
	session, err := h.Queries.ActiveSession(ctx)
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return mapSession(session), nil
}

func (h Handler) ListSessionsHandler(ctx context.Context) (httptransport.SessionListResponse, error) {
	sessions, err := h.Queries.ListSessions(ctx)
	if err != nil {
		return httptransport.SessionListResponse{}, err
	}
	items := make([]httptransport.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, mapSession(session))
	}
	return httptransport.SessionListResponse{Items: items}, nil
}

func (h Handler) ListCardsHandler(ctx context.Context) (httptransport.CardListResponse, error) {
	cards, err := h.Queries.ListActiveCards(ctx)
	if err != nil {
		return httptransport.CardListResponse{}, err
	}
	items := make([]httptransport.CardResponse, 0, len(cards))
	for _, card := range cards {
		items = append(items, httptransport.CardResponse{
			CardID:      card.CardID,
			Name:        card.Name,
			Description: card.Description,
			Icon:        card.Icon,
			Order:       card.Order,
		})
	}
	return httptransport.CardListResponse{Items: items}, nil
}

func (h Handler) GetCardHandler(ctx context.Context, cardID string) (httptransport.CardResponse, error) {
	card, err := h.Queries.GetCard(ctx, cardID)
	if err != nil {
		return httptransport.CardResponse{}, err
	}
	return httptransport.CardResponse{
		CardID:      card.CardID,
		Name:        card.Name,
		Description: card.Description,
		Icon:        card.Icon,
		Order:       card.Order,
	}, nil
}

func (h Handler) ParticipationHandler(ctx context.Context, sessionID string, teamID string) (httptransport.ParticipationResponse, error) {
	rate, err := h.Queries.ParticipationRate(ctx, sessionID, teamID)
	if err != nil {
		return httptransport.ParticipationResponse{}, err
	}
	complete, err := h.Queries.IsComplete(ctx, sessionID)
	if err != nil {
		return httptransport.ParticipationResponse{}, err
	}
	return httptransport.ParticipationResponse{
		SessionID:         sessionID,
		TeamID:            teamID,
		ParticipationRate: math.Round(rate*10) / 10,
		Complete:          complete,
	}, nil
}

func mapSession(session entities.Session) httptransport.SessionResponse {
	return httptransport.SessionResponse{
		SessionID:   session.SessionID,
		Name:        session.Name,
		Date:        session.Date.Format(dateLayout),
		Description: session.Description,
		IsActive:    session.IsActive,
	}
}
