package notify

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Publisher канал доставки сообщений (websocket hub, redis)
type Publisher interface {
	Name() string
	Publish(ctx context.Context, msg Message) error
}

// Observer учитывает отправленные уведомления в метриках
type Observer interface {
	ObserveNotification(channel, event string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Emitter раскладывает доменные события по комнатам и рассылает их во все каналы
// Ошибки каналов логируются и не возвращаются вызывающему
type Emitter struct {
	publishers []Publisher
	observer   Observer
	logger     Logger
}

// NewEmitter создает emitter. observer может быть nil
func NewEmitter(logger Logger, observer Observer, publishers ...Publisher) *Emitter {
	return &Emitter{
		publishers: publishers,
		observer:   observer,
		logger:     logger,
	}
}

// SessionUpdate рассылает изменение сессии подписчикам её зоны
func (e *Emitter) SessionUpdate(ctx context.Context, ev domain.SessionEvent) {
	e.emit(ctx, sessionMessages(ev))
}

// SlotUpdate рассылает изменение слота подписчикам его зоны
func (e *Emitter) SlotUpdate(ctx context.Context, ev domain.SlotEvent) {
	e.emit(ctx, slotMessages(ev))
}

// ZoneCapacityAlert рассылает предупреждение в комнату зоны и в общую комнату
func (e *Emitter) ZoneCapacityAlert(ctx context.Context, alert domain.CapacityAlert) {
	e.emit(ctx, capacityMessages(alert))
}

func (e *Emitter) emit(ctx context.Context, messages []Message) {
	for _, msg := range messages {
		for _, p := range e.publishers {
			err := p.Publish(ctx, msg)
			if e.observer != nil {
				e.observer.ObserveNotification(p.Name(), msg.Event, err)
			}
			if err != nil {
				e.logger.Error("Notify: %s failed to deliver %s to room=%s: %v", p.Name(), msg.Event, msg.Room, err)
			}
		}
	}
}
