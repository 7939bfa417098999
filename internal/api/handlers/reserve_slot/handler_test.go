package reserve_slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reserveSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_slot"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type stubUseCase struct {
	resp *reserveSlot.Response
	err  error
	got  *reserveSlot.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *reserveSlot.Request) (*reserveSlot.Response, error) {
	s.got = req
	return s.resp, s.err
}

func TestHandler_Success(t *testing.T) {
	uc := &stubUseCase{resp: &reserveSlot.Response{
		Success:   true,
		SlotID:    "S1",
		SessionID: "SES1",
		Message:   "Slot A-01 reserved successfully",
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parking/reserve",
		strings.NewReader(`{"userId":"U1","zoneId":"Z1","slotId":"S1"}`))
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.SlotID)
	assert.Equal(t, "S1", *uc.got.SlotID)
	assert.Equal(t, "Z1", uc.got.ZoneID)

	var body ReserveSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "SES1", body.SessionID)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", fmt.Errorf("%w: userId is required", reserveSlot.ErrInvalidInput), http.StatusBadRequest},
		{"no session", reserveSlot.ErrNoActiveSession, http.StatusNotFound},
		{"parked", reserveSlot.ErrSlotChangeForbidden, http.StatusConflict},
		{"slot not found", reserveSlot.ErrSlotNotFound, http.StatusNotFound},
		{"unavailable", reserveSlot.ErrSlotUnavailable, http.StatusConflict},
		{"zone mismatch", reserveSlot.ErrZoneMismatch, http.StatusConflict},
		{"zone full", reserveSlot.ErrNoAvailableSlots, http.StatusConflict},
		{"internal", fmt.Errorf("%w: %v", reserveSlot.ErrInternal, errors.New("disk")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/parking/reserve",
				strings.NewReader(`{"userId":"U1","zoneId":"Z1"}`))
			h.Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/parking/reserve", strings.NewReader(`not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
