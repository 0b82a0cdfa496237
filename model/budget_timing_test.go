package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBudgetTiming(t *testing.T) {
	for _, timing := range BudgetTimings {
		parsed, err := ParseBudgetTiming(string(timing))
		assert.NoError(t, err)
		assert.Equal(t, timing, parsed)
	}

	_, err := ParseBudgetTiming("monthly")
	assert.Error(t, err, "timings are case sensitive")
}

func TestBudgetTiming_NextPeriod(t *testing.T) {
	start := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC), BudgetTimingWeekly.NextPeriod(start))
	assert.Equal(t, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), BudgetTimingBiweekly.NextPeriod(start))
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), BudgetTimingMonthly.NextPeriod(start), "normalized like time.AddDate")
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), BudgetTimingQuarterly.NextPeriod(start))
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), BudgetTimingYearly.NextPeriod(start))
}
