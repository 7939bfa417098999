package get_zones

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

// Handle GET /api/v1/parking/zones
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zones, err := h.service.GetZones(r.Context())
	if err != nil {
		h.logger.Error("GET /zones - Failed to get zones: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /zones - Zones retrieved: count=%d", len(zones))
	handlers.RespondJSON(w, http.StatusOK, zones)
}
