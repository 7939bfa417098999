package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("%w: bad", domain.ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: slot", domain.ErrNotFound), http.StatusNotFound},
		{"state", fmt.Errorf("%w: parked", domain.ErrInvalidStateTransition), http.StatusConflict},
		{"unavailable", fmt.Errorf("%w: taken", domain.ErrResourceUnavailable), http.StatusConflict},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestRespondDomainError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondDomainError(rec, errors.New("db password leaked"), "слот не найден")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgInternalError, body.Error)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		UserID string `json:"userId"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId":"U1"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "U1", v.UserID)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId":`))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"userId":"U1"}{"userId":"U2"}`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=5&hour=x", nil)

	limit, err := QueryInt(req, "limit")
	require.NoError(t, err)
	require.NotNil(t, limit)
	assert.Equal(t, 5, *limit)

	_, err = QueryInt(req, "hour")
	assert.Error(t, err)

	missing, err := QueryInt(req, "mode")
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Nil(t, QueryString(req, "zoneId"))
}
