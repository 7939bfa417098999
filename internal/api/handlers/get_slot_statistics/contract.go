package get_slot_statistics

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

type StatisticsService interface {
	GetSlotStatistics(ctx context.Context, zoneID string) (*models.SlotStatistics, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
