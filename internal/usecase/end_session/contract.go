package end_session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
)

// RecordStore интерфейс хранилища записей
type RecordStore interface {
	Sessions(ctx context.Context) ([]domain.Session, error)
	Update(ctx context.Context, fn func(tx *records.Tx) error) error
}

// PricingClient интерфейс получения текущего тарифа пользователя
type PricingClient interface {
	RatePerHour(ctx context.Context, userID string) (float64, error)
}

// Notifier интерфейс отправки уведомлений подписчикам
type Notifier interface {
	SessionUpdate(ctx context.Context, ev domain.SessionEvent)
	SlotUpdate(ctx context.Context, ev domain.SlotEvent)
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
