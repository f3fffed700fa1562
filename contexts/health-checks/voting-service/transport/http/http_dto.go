package http

// CastVoteRequest submits one card's vote. SessionID is optional and
// defaults to the active session.
type CastVoteRequest struct {
	CardID       string `json:"card_id"`
	SessionID    string `json:"session_id,omitempty"`
	Value        string `json:"value"`
	ProgressNote string `json:"progress_note"`
	Comment      string `json:"comment,omitempty"`
}

// BulkVoteItemRequest is one card inside a "vote all" submission.
type BulkVoteItemRequest struct {
	CardID       string `json:"card_id"`
	Value        string `json:"value"`
	ProgressNote string `json:"progress_note"`
	Comment      string `json:"comment,omitempty"`
}

type CastVotesRequest struct {
	SessionID string                `json:"session_id,omitempty"`
	Items     []BulkVoteItemRequest `json:"items"`
}

type VoteResponse struct {
	VoteID       string `json:"vote_id"`
	UserID       string `json:"user_id"`
	CardID       string `json:"card_id"`
	SessionID    string `json:"session_id"`
	Value        string `json:"value"`
	ProgressNote string `json:"progress_note"`
	Comment      string `json:"comment,omitempty"`
	WasUpdate    bool   `json:"was_update"`
}

type CastVotesResponse struct {
	Votes []VoteResponse `json:"votes"`
}

type VoteListResponse struct {
	Items []VoteResponse `json:"items"`
}

// InvalidCard identifies one rejected card in a bulk submission response.
type InvalidCard struct {
	CardID string `json:"card_id"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type ErrorResponse struct {
	Code         string        `json:"code"`
	Message      string        `json:"message"`
	InvalidCards []InvalidCard `json:"invalid_cards,omitempty"`
}
