package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// BudgetTiming is how often a budget resets.
type BudgetTiming string

const (
	BudgetTimingWeekly    BudgetTiming = "WEEKLY"
	BudgetTimingBiweekly  BudgetTiming = "BIWEEKLY"
	BudgetTimingMonthly   BudgetTiming = "MONTHLY"
	BudgetTimingQuarterly BudgetTiming = "QUARTERLY"
	BudgetTimingYearly    BudgetTiming = "YEARLY"
)

// BudgetTimings lists every known timing in increasing period length.
var BudgetTimings = []BudgetTiming{
	BudgetTimingWeekly,
	BudgetTimingBiweekly,
	BudgetTimingMonthly,
	BudgetTimingQuarterly,
	BudgetTimingYearly,
}

// ParseBudgetTiming validates s.
func ParseBudgetTiming(s string) (BudgetTiming, error) {
	for _, t := range BudgetTimings {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown budget timing %q", s)
}

// Timing returns a pointer to t, for use in BudgetFields.
func (t BudgetTiming) Timing() *BudgetTiming {
	return &t
}

// NextPeriod returns the start of the period following the one starting at start.
func (t BudgetTiming) NextPeriod(start time.Time) time.Time {
	switch t {
	case BudgetTimingWeekly:
		return start.AddDate(0, 0, 7)
	case BudgetTimingBiweekly:
		return start.AddDate(0, 0, 14)
	case BudgetTimingQuarterly:
		return start.AddDate(0, 3, 0)
	case BudgetTimingYearly:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 1, 0)
	}
}

func (t *BudgetTiming) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBudgetTiming(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
