package get_zone

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
)

const msgNotFound = "зона не найдена"

type Handler struct {
	service ParkingService
	logger  Logger
}

func NewHandler(service ParkingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking/zones/{zoneId}
// zoneId может быть как ID зоны, так и её кодом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zoneID := mux.Vars(r)["zoneId"]

	zone, err := h.service.GetZoneByID(r.Context(), zoneID)
	if errors.Is(err, parking.ErrZoneNotFound) {
		zone, err = h.service.GetZoneByCode(r.Context(), zoneID)
	}
	if err != nil {
		if errors.Is(err, parking.ErrZoneNotFound) {
			h.logger.Warn("GET /zones/{id} - Zone not found: zone_id=%s", zoneID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /zones/{id} - Failed to get zone: zone_id=%s, error=%v", zoneID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, zone)
}
