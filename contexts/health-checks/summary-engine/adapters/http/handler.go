package httpadapter

import (
	"context"
	"log/slog"
	"math"

	"pulsecheck/contexts/health-checks/summary-engine/application/queries"
	"pulsecheck/contexts/health-checks/summary-engine/domain/entities"
	httptransport "pulsecheck/contexts/health-checks/summary-engine/transport/http"
)

type Handler struct {
	Dashboards queries.DashboardUseCase
	Logger     *slog.Logger
}

func (h Handler) TeamDashboardHandler(ctx context.Context, teamID string, sessionID string) (httptransport.DashboardResponse, error) {
	summaries, err := h.Dashboards.TeamDashboard(ctx, teamID, sessionID)
	if err != nil {
		return httptransport.DashboardResponse{}, err
	}
	return httptransport.DashboardResponse{
		ScopeType: string(entities.ScopeTeam),
		ScopeID:   teamID,
		SessionID: sessionID,
		Items:     mapSummaries(summaries),
	}, nil
}

func (h Handler) DepartmentDashboardHandler(ctx context.Context, departmentID string, sessionID string) (httptransport.DashboardResponse, error) {
	summaries, err := h.Dashboards.DepartmentDashboard(ctx, departmentID, sessionID)
	if err != nil {
		return httptransport.DashboardResponse{}, err
	}
	return httptransport.DashboardResponse{
		ScopeType: string(entities.ScopeDepartment),
		ScopeID:   departmentID,
		SessionID: sessionID,
		Items:     mapSummaries(summaries),
	}, nil
}

func (h Handler) TeamHealthHandler(ctx context.Context, teamID string, sessionID string) (httptransport.TeamHealthResponse, error) {
	status, err := h.Dashboards.TeamHealthStatus(ctx, teamID, sessionID)
	if err != nil {
		return httptransport.TeamHealthResponse{}, err
	}
	return httptransport.TeamHealthResponse{
		TeamID:    teamID,
		SessionID: sessionID,
		Status:    string(status),
	}, nil
}

func (h Handler) CardDistributionHandler(ctx context.Context, cardID string, sessionID string) (httptransport.DistributionResponse, error) {
	distribution, err := h.Dashboards.CardDistribution(ctx, cardID, sessionID)
	if err != nil {
		return httptransport.DistributionResponse{}, err
	}
	return httptransport.DistributionResponse{
		CardID:          cardID,
		SessionID:       sessionID,
		TotalVotes:      distribution.Total,
		GreenPercentage: roundPercentage(distribution.GreenPercentage),
		AmberPercentage: roundPercentage(distribution.AmberPercentage),
		RedPercentage:   roundPercentage(distribution.RedPercentage),
		AverageVote:     string(distribution.AverageVote),
	}, nil
}

func mapSummaries(summaries []entities.Summary) []httptransport.SummaryResponse {
	items := make([]httptransport.SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, httptransport.SummaryResponse{
			ScopeType:       string(summary.ScopeType),
			ScopeID:         summary.ScopeID,
			CardID:          summary.CardID,
			SessionID:       summary.SessionID,
			AverageVote:     string(summary.AverageVote),
			GreenPercentage: roundPercentage(summary.GreenPercentage),
			AmberPercentage: roundPercentage(summary.AmberPercentage),
			RedPercentage:   roundPercentage(summary.RedPercentage),
			ProgressSummary: string(summary.ProgressSummary),
		})
	}
	return items
}

// roundPercentage is display rounding only; one decimal place.
func roundPercentage(value float64) float64 {
	return math.Round(value*10) / 10
}
