package entities

import "time"

type VoteValue string

const (
	VoteGreen VoteValue = "green"
	VoteAmber VoteValue = "amber"
	VoteRed   VoteValue = "red"
)

func (v VoteValue) Valid() bool {
	return v == VoteGreen || v == VoteAmber || v == VoteRed
}

// Rank orders values for improvement checks: green over amber over red.
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

type ProgressNote string

const (
	ProgressBetter ProgressNote = "better"
	ProgressSame   ProgressNote = "same"
	ProgressWorse  ProgressNote = "worse"
)

func (p ProgressNote) Valid() bool {
	return p == ProgressBetter || p == ProgressSame || p == ProgressWorse
}

// Vote is one user's assessment of one card in one session.
type Vote struct {
	VoteID       string
	UserID       string
	CardID       string
	SessionID    string
	Value        VoteValue
	ProgressNote ProgressNote
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ImprovedOn reports whether this vote is healthier than an earlier one.
func (v Vote) ImprovedOn(previous Vote) bool {
	return v.Value.Rank() > previous.Value.Rank()
}
