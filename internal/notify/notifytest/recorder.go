package notifytest

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Recorder запоминает все отправленные уведомления
type Recorder struct {
	mu       sync.Mutex
	sessions []domain.SessionEvent
	slots    []domain.SlotEvent
	alerts   []domain.CapacityAlert
}

func (r *Recorder) SessionUpdate(_ context.Context, ev domain.SessionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, ev)
}

func (r *Recorder) SlotUpdate(_ context.Context, ev domain.SlotEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots = append(r.slots, ev)
}

func (r *Recorder) ZoneCapacityAlert(_ context.Context, alert domain.CapacityAlert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert)
}

func (r *Recorder) SessionEvents() []domain.SessionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.SessionEvent(nil), r.sessions...)
}

func (r *Recorder) SlotEvents() []domain.SlotEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.SlotEvent(nil), r.slots...)
}

func (r *Recorder) Alerts() []domain.CapacityAlert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.CapacityAlert(nil), r.alerts...)
}
