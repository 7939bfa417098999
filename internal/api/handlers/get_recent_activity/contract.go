package get_recent_activity

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

type StatisticsService interface {
	GetRecentActivity(ctx context.Context, req *models.RecentActivityRequest) ([]domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
