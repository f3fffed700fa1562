package entities

// Distribution is the computed vote breakdown for one scope/card/session.
type Distribution struct {
	Total           int
	GreenPercentage float64
	AmberPercentage float64
	RedPercentage   float64
	AverageVote     VoteValue
}

// ComputeDistribution derives the percentage breakdown and plurality value
// from a set of votes. Pure function: identical input yields identical
// output, which is what makes summary recomputation idempotent.
//
// Zero votes produce all-zero percentages and VoteNoData, never a defaulted
// color and never a division by zero. AverageVote is the plurality value;
// ties resolve worst-status-wins (red over amber over green) so a split vote
// is surfaced as the more concerning color.
func ComputeDistribution(values []VoteValue) Distribution {
	var green, amber, red int
	for _, value := range values {
		switch value {
		case VoteGreen:
			green++
		case VoteAmber:
			amber++
		case VoteRed:
			red++
		}
	}

	total := green + amber + red
	if total == 0 {
		return Distribution{AverageVote: VoteNoData}
	}

	average := VoteRed
	best := red
	if amber > best {
		average = VoteAmber
		best = amber
	}
	if green > best {
		average = VoteGreen
	}

	return Distribution{
		Total:           total,
		GreenPercentage: float64(green) * 100 / float64(total),
		AmberPercentage: float64(amber) * 100 / float64(total),
		RedPercentage:   float64(red) * 100 / float64(total),
		AverageVote:     average,
	}
}

// CompareTrend maps two consecutive average votes onto a progress note using
// ordinal rank comparison. A missing or no-data baseline yields ProgressSame
// so first sessions start neutral instead of comparing against nothing.
func CompareTrend(current VoteValue, previous VoteValue) ProgressNote {
	if !current.IsColor() || !previous.IsColor() {
		return ProgressSame
	}
	switch {
	case current.Rank() > previous.Rank():
		return ProgressBetter
	case current.Rank() < previous.Rank():
		return ProgressWorse
	default:
		return ProgressSame
	}
}
