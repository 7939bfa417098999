package toggle_slot_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
	"github.com/m04kA/SMC-ParkingService/internal/notify/notifytest"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T, slots []domain.Slot, sessions []domain.Session) (*UseCase, *records.Store, *notifytest.Recorder) {
	t.Helper()
	ctx := context.Background()

	store := records.NewStore(records.NewMemoryBackend(), nil)
	require.NoError(t, store.ReplaceSlots(ctx, slots))
	require.NoError(t, store.ReplaceSessions(ctx, sessions))

	recorder := &notifytest.Recorder{}
	uc := NewUseCase(store, recorder, logger.NewNop())
	uc.timeProvider = fixedClock{now: testNow}

	return uc, store, recorder
}

func slot(id, zoneID string, status domain.SlotStatus) domain.Slot {
	return domain.Slot{ID: id, ZoneID: zoneID, SlotNumber: id, Status: status, IsActive: true}
}

func strPtr(s string) *string { return &s }

func TestExecute_OccupiedRepairsSessionDrift(t *testing.T) {
	reserved := slot("S1", "Z1", domain.SlotReserved)
	reserved.CurrentSessionID = null.StringFrom("SESS1")
	session := domain.Session{
		ID:     "SESS1",
		UserID: "U1",
		SlotID: null.StringFrom("S1"),
		ZoneID: null.StringFrom("Z1"),
		Status: domain.SessionActive,
	}
	uc, store, recorder := setup(t,
		[]domain.Slot{reserved, slot("S2", "Z2", domain.SlotAvailable)},
		[]domain.Session{session})

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "S2", Status: "occupied", SessionID: strPtr("SESS1")})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotOccupied, resp.Slot.Status)
	assert.Equal(t, null.StringFrom("SESS1"), resp.Slot.CurrentSessionID)

	slots, sessions, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SlotOccupied, slots[1].Status)
	assert.Equal(t, null.StringFrom("S2"), sessions[0].SlotID)
	assert.Equal(t, null.StringFrom("Z2"), sessions[0].ZoneID)

	slotEvents := recorder.SlotEvents()
	require.Len(t, slotEvents, 1)
	assert.Equal(t, "Z2", slotEvents[0].ZoneID)
	// Z2 состоит из одного занятого слота
	alerts := recorder.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, 100, alerts[0].OccupancyPercentage)
}

func TestExecute_MaintenanceOverAnyState(t *testing.T) {
	occupied := slot("S1", "Z1", domain.SlotOccupied)
	occupied.CurrentSessionID = null.StringFrom("SESS1")
	uc, store, _ := setup(t, []domain.Slot{occupied}, nil)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "S1", Status: "maintenance"})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotMaintenance, resp.Slot.Status)
	assert.False(t, resp.Slot.CurrentSessionID.Valid)

	slots, err := store.Slots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SlotMaintenance, slots[0].Status)
	assert.Equal(t, testNow, slots[0].UpdatedAt)
}

func TestExecute_OccupiedWithoutSessionKeepsReference(t *testing.T) {
	reserved := slot("S1", "Z1", domain.SlotReserved)
	reserved.CurrentSessionID = null.StringFrom("SESS1")
	uc, _, _ := setup(t, []domain.Slot{reserved}, nil)

	resp, err := uc.Execute(context.Background(), &Request{SlotID: "S1", Status: "occupied"})
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("SESS1"), resp.Slot.CurrentSessionID)
}

func TestExecute_AvailableForcedWhileSessionReferencesSlot(t *testing.T) {
	occupied := slot("S1", "Z1", domain.SlotOccupied)
	occupied.CurrentSessionID = null.StringFrom("SESS1")
	session := domain.Session{ID: "SESS1", UserID: "U1", SlotID: null.StringFrom("S1"), Status: domain.SessionActive}
	uc, store, recorder := setup(t, []domain.Slot{occupied}, []domain.Session{session})

	_, err := uc.Execute(context.Background(), &Request{SlotID: "S1", Status: "available"})
	require.NoError(t, err)

	sessions, err := store.Sessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("S1"), sessions[0].SlotID)
	assert.Empty(t, recorder.Alerts())
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      *Request
		wantErr  error
		wantKind error
	}{
		{
			name:     "unknown status",
			req:      &Request{SlotID: "S1", Status: "broken"},
			wantErr:  ErrInvalidStatus,
			wantKind: domain.ErrValidation,
		},
		{
			name:     "slot not found",
			req:      &Request{SlotID: "missing", Status: "available"},
			wantErr:  ErrSlotNotFound,
			wantKind: domain.ErrNotFound,
		},
		{
			name:     "session not found",
			req:      &Request{SlotID: "S1", Status: "occupied", SessionID: strPtr("ghost")},
			wantErr:  ErrSessionNotFound,
			wantKind: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store, recorder := setup(t, []domain.Slot{slot("S1", "Z1", domain.SlotAvailable)}, nil)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantKind)

			slots, err := store.Slots(context.Background())
			require.NoError(t, err)
			assert.Equal(t, domain.SlotAvailable, slots[0].Status)
			assert.Empty(t, recorder.SlotEvents())
		})
	}
}
