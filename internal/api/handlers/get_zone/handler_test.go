package get_zone

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type stubService struct {
	zones []domain.Zone
}

func (s *stubService) GetZoneByID(_ context.Context, id string) (*domain.Zone, error) {
	if zone, ok := domain.FindZone(s.zones, id); ok {
		return &zone, nil
	}
	return nil, parking.ErrZoneNotFound
}

func (s *stubService) GetZoneByCode(_ context.Context, code string) (*domain.Zone, error) {
	if zone, ok := domain.FindZoneByCode(s.zones, code); ok {
		return &zone, nil
	}
	return nil, parking.ErrZoneNotFound
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/zones/{zoneId}", h.Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler_ByIDOrCode(t *testing.T) {
	h := NewHandler(&stubService{zones: []domain.Zone{{ID: "Z1", Code: "A", Name: "Zone A"}}}, logger.NewNop())

	assert.Equal(t, http.StatusOK, serve(h, "/zones/Z1").Code)
	assert.Equal(t, http.StatusOK, serve(h, "/zones/A").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, "/zones/B").Code)
}
