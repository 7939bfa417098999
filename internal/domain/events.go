package domain

import "time"

// SlotEvent уведомление об изменении слота
type SlotEvent struct {
	ZoneID    string    `json:"zoneId"`
	Slot      Slot      `json:"slot"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionEvent уведомление об изменении сессии
type SessionEvent struct {
	ZoneID    string    `json:"zoneId,omitempty"`
	Session   Session   `json:"session"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSlotEvent создает уведомление об изменении слота
func NewSlotEvent(slot Slot, now time.Time) SlotEvent {
	return SlotEvent{
		ZoneID:    slot.ZoneID,
		Slot:      slot,
		Timestamp: now,
	}
}

// NewSessionEvent создает уведомление об изменении сессии
func NewSessionEvent(session Session, now time.Time) SessionEvent {
	return SessionEvent{
		ZoneID:    session.ZoneID.ValueOrZero(),
		Session:   session,
		Timestamp: now,
	}
}
