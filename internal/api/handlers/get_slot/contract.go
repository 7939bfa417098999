package get_slot

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingService interface {
	GetSlotByID(ctx context.Context, id string) (*domain.Slot, error)
	GetSlotByNumber(ctx context.Context, number, zoneCode string) (*domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
