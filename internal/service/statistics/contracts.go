package statistics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// RecordStore интерфейс чтения коллекций хранилища
type RecordStore interface {
	Slots(ctx context.Context) ([]domain.Slot, error)
	Sessions(ctx context.Context) ([]domain.Session, error)
	Snapshot(ctx context.Context) ([]domain.Slot, []domain.Session, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
