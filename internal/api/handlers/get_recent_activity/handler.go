package get_recent_activity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

const msgInvalidLimit = "limit должен быть положительным числом"

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

// Handle GET /api/v1/parking/statistics/recent-activity?zoneId=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, err := handlers.QueryInt(r, "limit")
	if err != nil {
		h.logger.Warn("GET /statistics/recent-activity - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}

	sessions, err := h.service.GetRecentActivity(r.Context(), &models.RecentActivityRequest{
		ZoneID: handlers.QueryString(r, "zoneId"),
		Limit:  limit,
	})
	if err != nil {
		if errors.Is(err, statistics.ErrInvalidLimit) {
			h.logger.Warn("GET /statistics/recent-activity - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		h.logger.Error("GET /statistics/recent-activity - Failed to get recent activity: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sessions)
}
