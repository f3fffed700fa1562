package http

type CreateSessionRequest struct {
	Name        string `json:"name,omitempty"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Activate    bool   `json:"activate"`
}

type SessionResponse struct {
	SessionID   string `json:"session_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type SessionListResponse struct {
	Items []SessionResponse `json:"items"`
}

type CardResponse struct {
	CardID      string `json:"card_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}

type CardListResponse struct {
	Items []CardResponse `json:"items"`
}

type ParticipationResponse struct {
	SessionID         string  `json:"session_id"`
	TeamID            string  `json:"team_id,omitempty"`
	ParticipationRate float64 `json:"participation_rate"`
	Complete          bool    `json:"complete"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
