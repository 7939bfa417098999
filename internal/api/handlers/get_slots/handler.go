package get_slots

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

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

// Handle GET /api/v1/parking/slots?zoneId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zoneID := r.URL.Query().Get("zoneId")

	slots, err := h.service.GetSlots(r.Context(), zoneID)
	if err != nil {
		h.logger.Error("GET /slots - Failed to get slots: zone_id=%s, error=%v", zoneID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Slots retrieved: zone_id=%s, count=%d", zoneID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, slots)
}
