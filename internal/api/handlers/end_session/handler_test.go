package end_session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	endSession "github.com/m04kA/SMC-ParkingService/internal/usecase/end_session"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type stubUseCase struct {
	resp *endSession.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *endSession.Request) (*endSession.Response, error) {
	return s.resp, s.err
}

func TestHandler_Success(t *testing.T) {
	h := NewHandler(&stubUseCase{resp: &endSession.Response{
		Session:         domain.Session{ID: "SES1", Status: domain.SessionCompleted},
		DurationMinutes: 45,
		TotalCost:       1.5,
	}}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/parking/sessions/end",
		strings.NewReader(`{"sessionId":"SES1"}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Session         map[string]any `json:"session"`
		DurationMinutes int64          `json:"durationMinutes"`
		TotalCost       float64        `json:"totalCost"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(45), body.DurationMinutes)
	assert.InDelta(t, 1.5, body.TotalCost, 1e-9)
	assert.Equal(t, "completed", body.Session["status"])
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", endSession.ErrSessionNotFound, http.StatusNotFound},
		{"already ended", endSession.ErrSessionNotActive, http.StatusConflict},
		{"invalid", endSession.ErrInvalidInput, http.StatusBadRequest},
		{"internal", endSession.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/parking/sessions/end",
				strings.NewReader(`{"sessionId":"SES1"}`)))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
