package get_session_history

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

type StatisticsService interface {
	GetSessionHistory(ctx context.Context, req *models.SessionHistoryRequest) ([]domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
