package get_slot_statistics

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	service StatisticsService
	logger  Logger
}

func NewHandler(service StatisticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking/static?zoneId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zoneID := r.URL.Query().Get("zoneId")

	stats, err := h.service.GetSlotStatistics(r.Context(), zoneID)
	if err != nil {
		h.logger.Error("GET /static - Failed to get slot statistics: zone_id=%s, error=%v", zoneID, err)
		handlers.RespondInternalError(w)
		return
	}

	if stats.Alert != nil {
		h.logger.Warn("GET /static - Zone capacity alert: zone_id=%s, occupancy=%d%%", zoneID, stats.OccupancyPercentage)
	}
	handlers.RespondJSON(w, http.StatusOK, stats)
}
