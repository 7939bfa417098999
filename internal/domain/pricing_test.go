package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationMinutes(t *testing.T) {
	entry := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		exit time.Time
		want int64
	}{
		{name: "truncates seconds", exit: entry.Add(45*time.Minute + 30*time.Second), want: 45},
		{name: "just under a minute", exit: entry.Add(59 * time.Second), want: 0},
		{name: "exact hours", exit: entry.Add(2 * time.Hour), want: 120},
		{name: "exit before entry", exit: entry.Add(-time.Minute), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationMinutes(entry, tt.exit))
		})
	}
}

func TestTotalCost(t *testing.T) {
	assert.InDelta(t, 1.5, TotalCost(45, 2.0), 1e-9)
	assert.InDelta(t, 0.25, TotalCost(60, DefaultRatePerHour), 1e-9)
	assert.Equal(t, 0.0, TotalCost(0, 3.0))
}

func TestTotalCost_Monotonic(t *testing.T) {
	prev := -1.0
	for minutes := int64(0); minutes <= 600; minutes++ {
		cost := TotalCost(minutes, 1.75)
		assert.GreaterOrEqual(t, cost, prev)
		prev = cost
	}
}
