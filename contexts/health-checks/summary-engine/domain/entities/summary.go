package entities

import "time"

type VoteValue string

const (
	VoteGreen VoteValue = "green"
	VoteAmber VoteValue = "amber"
	VoteRed   VoteValue = "red"

	// VoteNoData marks a summary computed over zero votes. It is an explicit
	// state so dashboards never mistake "nobody voted" for a color.
	VoteNoData VoteValue = "no_data"
)

// Rank orders traffic-light values for trend comparison.
// Green is healthiest; no-data ranks below everything.
func (v VoteValue) Rank() int {
	switch v {
	case VoteGreen:
		return 3
	case VoteAmber:
		return 2
	case VoteRed:
		return 1
	default:
		return 0
	}
}

func (v VoteValue) IsColor() bool {
	return v == VoteGreen || v == VoteAmber || v == VoteRed
}

type ProgressNote string

const (
	ProgressBetter ProgressNote = "better"
	ProgressSame   ProgressNote = "same"
	ProgressWorse  ProgressNote = "worse"
)

type ScopeType string

const (
	ScopeTeam       ScopeType = "team"
	ScopeDepartment ScopeType = "department"
)

// Summary is the persisted aggregate for one (scope, card, session) key.
// Percentages sum to 100 when AverageVote is a color and are all zero when
// AverageVote is VoteNoData.
type Summary struct {
	ScopeType       ScopeType
	ScopeID         string
	CardID          string
	SessionID       string
	AverageVote     VoteValue
	GreenPercentage float64
	AmberPercentage float64
	RedPercentage   float64
	ProgressSummary ProgressNote
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
