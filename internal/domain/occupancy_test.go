package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotsWithStatuses(zoneID string, statuses ...SlotStatus) []Slot {
	slots := make([]Slot, 0, len(statuses))
	for i, st := range statuses {
		slots = append(slots, Slot{
			ID:         zoneID + "-S" + string(rune('0'+i)),
			ZoneID:     zoneID,
			SlotNumber: string(rune('A' + i)),
			Status:     st,
			IsActive:   true,
		})
	}
	return slots
}

func TestCountSlots(t *testing.T) {
	slots := slotsWithStatuses("Z1",
		SlotOccupied, SlotOccupied, SlotOccupied, SlotOccupied,
		SlotOccupied, SlotOccupied, SlotOccupied, SlotOccupied,
		SlotReserved, SlotAvailable,
	)

	counts := CountSlots(slots)

	assert.Equal(t, 10, counts.Total)
	assert.Equal(t, 8, counts.Occupied)
	assert.Equal(t, 1, counts.Reserved)
	assert.Equal(t, 1, counts.Available)
	assert.Equal(t, 0, counts.Maintenance)
	assert.Equal(t, 9, counts.Used())
	assert.Equal(t, 90, counts.OccupancyPercentage())
}

func TestCountSlots_Empty(t *testing.T) {
	counts := CountSlots(nil)
	assert.Equal(t, 0, counts.OccupancyPercentage())
}

func TestNewCapacityAlert(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		occupancy int
		wantAlert bool
		severity  AlertSeverity
	}{
		{name: "below threshold", occupancy: 79, wantAlert: false},
		{name: "at threshold", occupancy: 80, wantAlert: true, severity: SeverityMedium},
		{name: "just below high", occupancy: 89, wantAlert: true, severity: SeverityMedium},
		{name: "at high", occupancy: 90, wantAlert: true, severity: SeverityHigh},
		{name: "full", occupancy: 100, wantAlert: true, severity: SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert, ok := NewCapacityAlert("Z1", tt.occupancy, now)
			require.Equal(t, tt.wantAlert, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.severity, alert.Severity)
			assert.Equal(t, "Z1", alert.ZoneID)
			assert.Equal(t, tt.occupancy, alert.OccupancyPercentage)
			assert.Equal(t, now, alert.Timestamp)
		})
	}
}

func TestZoneCapacityAlert_OnlyCountsZoneSlots(t *testing.T) {
	now := time.Now()
	slots := append(
		slotsWithStatuses("Z1", SlotOccupied, SlotOccupied, SlotReserved, SlotOccupied, SlotOccupied),
		slotsWithStatuses("Z2", SlotAvailable, SlotAvailable, SlotAvailable)...,
	)

	alert, ok := ZoneCapacityAlert(slots, "Z1", now)
	require.True(t, ok)
	assert.Equal(t, 100, alert.OccupancyPercentage)
	assert.Equal(t, SeverityHigh, alert.Severity)

	_, ok = ZoneCapacityAlert(slots, "Z2", now)
	assert.False(t, ok)
}

func TestClampPercentage(t *testing.T) {
	assert.Equal(t, 0, ClampPercentage(-5))
	assert.Equal(t, 42, ClampPercentage(42))
	assert.Equal(t, 100, ClampPercentage(250))
}
