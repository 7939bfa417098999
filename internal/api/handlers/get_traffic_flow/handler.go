package get_traffic_flow

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

const (
	msgInvalidHour      = "час должен быть в диапазоне 0-23"
	msgInvalidMode      = "режим должен быть hour или day"
	msgInvalidDayOfWeek = "некорректный день недели, ожидается Monday..Sunday"
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

// Handle GET /api/v1/parking/statistics/traffic-flow?zoneId=&dayOfWeek=&hour=&mode=
// filterType принимается как старое имя параметра mode
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hour, err := handlers.QueryInt(r, "hour")
	if err != nil {
		h.logger.Warn("GET /statistics/traffic-flow - Invalid hour: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHour)
		return
	}

	mode := handlers.QueryString(r, "mode")
	if mode == nil {
		mode = handlers.QueryString(r, "filterType")
	}

	points, err := h.service.GetTrafficFlow(r.Context(), &models.TrafficFlowRequest{
		ZoneID:    handlers.QueryString(r, "zoneId"),
		DayOfWeek: handlers.QueryString(r, "dayOfWeek"),
		Hour:      hour,
		Mode:      mode,
	})
	if err != nil {
		switch {
		case errors.Is(err, statistics.ErrInvalidHour):
			h.logger.Warn("GET /statistics/traffic-flow - Invalid hour: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHour)

		case errors.Is(err, statistics.ErrInvalidMode):
			h.logger.Warn("GET /statistics/traffic-flow - Invalid mode: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMode)

		case errors.Is(err, statistics.ErrInvalidDayOfWeek):
			h.logger.Warn("GET /statistics/traffic-flow - Invalid day of week: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("GET /statistics/traffic-flow - Failed to compute traffic flow: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, points)
}
