package get_traffic_flow

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

type StatisticsService interface {
	GetTrafficFlow(ctx context.Context, req *models.TrafficFlowRequest) ([]models.TrafficPoint, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
