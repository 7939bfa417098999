package parking

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// RecordStore интерфейс чтения коллекций хранилища
type RecordStore interface {
	Zones(ctx context.Context) ([]domain.Zone, error)
	Slots(ctx context.Context) ([]domain.Slot, error)
	Sessions(ctx context.Context) ([]domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
