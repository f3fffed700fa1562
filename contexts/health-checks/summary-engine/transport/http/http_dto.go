package http

// SummaryResponse carries one (scope, card, session) aggregate. Percentages
// are rounded to one decimal for display; stored values keep full precision.
type SummaryResponse struct {
	ScopeType       string  `json:"scope_type"`
	ScopeID         string  `json:"scope_id"`
	CardID          string  `json:"card_id"`
	SessionID       string  `json:"session_id"`
	AverageVote     string  `json:"average_vote"`
	GreenPercentage float64 `json:"green_percentage"`
	AmberPercentage float64 `json:"amber_percentage"`
	RedPercentage   float64 `json:"red_percentage"`
	ProgressSummary string  `json:"progress_summary"`
}

type DashboardResponse struct {
	ScopeType string            `json:"scope_type"`
	ScopeID   string            `json:"scope_id"`
	SessionID string            `json:"session_id"`
	Items     []SummaryResponse `json:"items"`
}

type TeamHealthResponse struct {
	TeamID    string `json:"team_id"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

type DistributionResponse struct {
	CardID          string  `json:"card_id"`
	SessionID       string  `json:"session_id"`
	TotalVotes      int     `json:"total_votes"`
	GreenPercentage float64 `json:"green_percentage"`
	AmberPercentage float64 `json:"amber_percentage"`
	RedPercentage   float64 `json:"red_percentage"`
	AverageVote     string  `json:"average_vote"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
