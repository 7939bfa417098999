package start_session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v4"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/identity"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/identity/identitytest"
	"github.com/m04kA/SMC-ParkingService/internal/notify/notifytest"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func setup(t *testing.T, slots []domain.Slot, sessions []domain.Session) (*UseCase, *records.Store, *identitytest.Fake, *notifytest.Recorder) {
	t.Helper()
	ctx := context.Background()

	store := records.NewStore(records.NewMemoryBackend(), nil)
	require.NoError(t, store.ReplaceSlots(ctx, slots))
	require.NoError(t, store.ReplaceSessions(ctx, sessions))

	fake := identitytest.New()
	recorder := &notifytest.Recorder{}
	uc := NewUseCase(store, fake, recorder, logger.NewNop())
	uc.timeProvider = fixedClock{now: testNow}

	var seq int64
	uc.newID = func() string {
		return fmt.Sprintf("SESS%d", atomic.AddInt64(&seq, 1))
	}

	return uc, store, fake, recorder
}

func strPtr(s string) *string { return &s }

func TestExecute_CreatesSessionFromProfile(t *testing.T) {
	uc, store, fake, recorder := setup(t, nil, nil)
	fake.Vehicles["U1"] = []identity.Vehicle{{ID: "V1"}, {ID: "V2"}}
	fake.QRCodes["U1"] = identity.QRCode{ID: "QR1"}
	fake.Rates["U1"] = 2.0

	resp, err := uc.Execute(context.Background(), &Request{UserID: "U1", ZoneID: strPtr("Z1")})
	require.NoError(t, err)
	require.True(t, resp.Created)

	s := resp.Session
	assert.Equal(t, "SESS1", s.ID)
	assert.Equal(t, null.StringFrom("V1"), s.VehicleID)
	assert.Equal(t, null.StringFrom("QR1"), s.QRCodeID)
	assert.Equal(t, null.StringFrom("Z1"), s.ZoneID)
	assert.False(t, s.SlotID.Valid)
	assert.Equal(t, 2.0, s.BaseRate)
	assert.Equal(t, testNow, s.EntryTime)
	assert.Equal(t, domain.MethodQR, s.EntryMethod)
	assert.Equal(t, domain.SessionActive, s.Status)
	assert.Equal(t, domain.PaymentPending, s.PaymentStatus)
	assert.False(t, s.ExitTime.Valid)
	assert.False(t, s.DurationMinutes.Valid)
	assert.False(t, s.TotalCost.Valid)

	stored, err := store.Sessions(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)

	events := recorder.SessionEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "Z1", events[0].ZoneID)
}

func TestExecute_ExplicitQRCodeAndEntryMethod(t *testing.T) {
	uc, _, fake, _ := setup(t, nil, nil)
	fake.QRCodes["U1"] = identity.QRCode{ID: "QR-file"}

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:      "U1",
		QRCodeID:    strPtr("QR-gate"),
		EntryMethod: strPtr(domain.MethodManual),
	})
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("QR-gate"), resp.Session.QRCodeID)
	assert.Equal(t, domain.MethodManual, resp.Session.EntryMethod)
	assert.Equal(t, domain.DefaultRatePerHour, resp.Session.BaseRate)
}

func TestExecute_IdentityUnavailableUsesDefaults(t *testing.T) {
	uc, _, fake, _ := setup(t, nil, nil)
	fake.Err = errors.New("connection refused")

	resp, err := uc.Execute(context.Background(), &Request{UserID: "U1"})
	require.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, domain.DefaultRatePerHour, resp.Session.BaseRate)
	assert.False(t, resp.Session.VehicleID.Valid)
	assert.False(t, resp.Session.QRCodeID.Valid)
}

func TestExecute_ActiveSessionIsReturnedUnchanged(t *testing.T) {
	existing := domain.Session{
		ID:        "OLD",
		UserID:    "U1",
		EntryTime: testNow.Add(-time.Hour),
		BaseRate:  1.0,
		Status:    domain.SessionActive,
	}
	uc, store, fake, recorder := setup(t, nil, []domain.Session{existing})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "U1"})
	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, "OLD", resp.Session.ID)
	assert.Equal(t, 0, fake.RateCalls)
	assert.Empty(t, recorder.SessionEvents())

	stored, err := store.Sessions(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestExecute_ActiveSessionMergesSlotAndResolvesZone(t *testing.T) {
	existing := domain.Session{ID: "OLD", UserID: "U1", BaseRate: 1.0, Status: domain.SessionActive}
	slots := []domain.Slot{{ID: "S7", ZoneID: "Z3", Status: domain.SlotAvailable, IsActive: true}}
	uc, store, _, recorder := setup(t, slots, []domain.Session{existing})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "U1", SlotID: strPtr("S7")})
	require.NoError(t, err)
	assert.False(t, resp.Created)
	assert.Equal(t, null.StringFrom("S7"), resp.Session.SlotID)
	assert.Equal(t, null.StringFrom("Z3"), resp.Session.ZoneID)
	assert.Equal(t, 1.0, resp.Session.BaseRate)

	stored, err := store.Sessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, null.StringFrom("Z3"), stored[0].ZoneID)

	events := recorder.SessionEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "Z3", events[0].ZoneID)
}

func TestExecute_CompletedSessionDoesNotBlockNewOne(t *testing.T) {
	done := domain.Session{ID: "OLD", UserID: "U1", Status: domain.SessionCompleted}
	uc, store, _, _ := setup(t, nil, []domain.Session{done})

	resp, err := uc.Execute(context.Background(), &Request{UserID: "U1"})
	require.NoError(t, err)
	assert.True(t, resp.Created)

	stored, err := store.Sessions(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _, _ := setup(t, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Execute(context.Background(), &Request{UserID: "U1", EntryMethod: strPtr("teleport")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ConcurrentStartsKeepOneActiveSession(t *testing.T) {
	uc, store, _, _ := setup(t, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{UserID: "U1"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := store.Sessions(context.Background())
	require.NoError(t, err)
	active := 0
	for _, s := range stored {
		if s.IsActive() && s.UserID == "U1" {
			active++
		}
	}
	assert.Equal(t, 1, active)
	assert.Len(t, stored, 1)
}

// staleReadStore отдаёт устаревший список сессий при чтении без блокировки
type staleReadStore struct {
	*records.Store
	stale []domain.Session
}

func (s *staleReadStore) Sessions(context.Context) ([]domain.Session, error) {
	return s.stale, nil
}

func TestExecute_SessionEndedAfterReadUsesUserProfile(t *testing.T) {
	ended := domain.Session{ID: "OLD", UserID: "U1", BaseRate: 2.0, Status: domain.SessionCompleted}
	uc, store, fake, _ := setup(t, nil, []domain.Session{ended})
	fake.Vehicles["U1"] = []identity.Vehicle{{ID: "V1"}}
	fake.QRCodes["U1"] = identity.QRCode{ID: "QR1"}
	fake.Rates["U1"] = 2.0

	stillActive := ended
	stillActive.Status = domain.SessionActive
	uc.store = &staleReadStore{Store: store, stale: []domain.Session{stillActive}}

	resp, err := uc.Execute(context.Background(), &Request{UserID: "U1"})
	require.NoError(t, err)
	require.True(t, resp.Created)

	assert.Equal(t, "SESS1", resp.Session.ID)
	assert.Equal(t, 2.0, resp.Session.BaseRate)
	assert.Equal(t, null.StringFrom("V1"), resp.Session.VehicleID)
	assert.Equal(t, null.StringFrom("QR1"), resp.Session.QRCodeID)
	assert.Equal(t, 1, fake.RateCalls)

	stored, err := store.Sessions(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}
