package reserve_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
)

// RecordStore интерфейс хранилища записей
type RecordStore interface {
	Update(ctx context.Context, fn func(tx *records.Tx) error) error
}

// Notifier интерфейс отправки уведомлений подписчикам
type Notifier interface {
	SessionUpdate(ctx context.Context, ev domain.SessionEvent)
	ZoneCapacityAlert(ctx context.Context, alert domain.CapacityAlert)
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
	return time.Now().UTC()
}
