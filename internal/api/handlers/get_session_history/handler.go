package get_session_history

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidStatus = "некорректный статус сессии, ожидается active или completed"
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

// Handle GET /api/v1/parking/sessions/history?zoneId=&userId=&status=&startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.SessionHistoryRequest{
		ZoneID:    handlers.QueryString(r, "zoneId"),
		UserID:    handlers.QueryString(r, "userId"),
		Status:    handlers.QueryString(r, "status"),
		StartDate: handlers.QueryString(r, "startDate"),
		EndDate:   handlers.QueryString(r, "endDate"),
	}

	sessions, err := h.service.GetSessionHistory(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, statistics.ErrInvalidDate):
			h.logger.Warn("GET /sessions/history - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, statistics.ErrInvalidStatus):
			h.logger.Warn("GET /sessions/history - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /sessions/history - Failed to get history: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/history - History retrieved: count=%d", len(sessions))
	handlers.RespondJSON(w, http.StatusOK, sessions)
}
