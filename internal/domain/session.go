package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

// SessionStatus represents the lifecycle state of a parking session
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// IsValid returns true if the status is one of the known session statuses
func (s SessionStatus) IsValid() bool {
	return s == SessionActive || s == SessionCompleted
}

// PaymentStatus represents the payment state of a parking session
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Session represents a parking session from entry to exit
type Session struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	VehicleID       null.String   `json:"vehicle_id"`
	ZoneID          null.String   `json:"zone_id"`
	SlotID          null.String   `json:"slot_id"`
	QRCodeID        null.String   `json:"qr_code_id"`
	EntryTime       time.Time     `json:"entry_time"`
	ExitTime        null.Time     `json:"exit_time"`
	EntryMethod     string        `json:"entry_method"`
	ExitMethod      null.String   `json:"exit_method"`
	DurationMinutes null.Int      `json:"duration_minutes"`
	BaseRate        float64       `json:"base_rate"` // Почасовая ставка, фиксируется при создании сессии
	TotalCost       null.Float    `json:"total_cost"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	TransactionID   null.String   `json:"transaction_id"`
	Status          SessionStatus `json:"status"`
	Notes           null.String   `json:"notes"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// IsActive returns true if the session has not been completed yet
func (s *Session) IsActive() bool {
	return s.Status == SessionActive
}

// EffectiveExitTime возвращает время выхода, а для открытой сессии - now
func (s *Session) EffectiveExitTime(now time.Time) time.Time {
	if s.ExitTime.Valid {
		return s.ExitTime.Time
	}
	return now
}

// Overlaps проверяет, была ли сессия открыта внутри окна [start, end)
func (s *Session) Overlaps(start, end, now time.Time) bool {
	return s.EntryTime.Before(end) && s.EffectiveExitTime(now).After(start)
}

// AssignSlot привязывает сессию к слоту и зоне
func (s *Session) AssignSlot(slotID, zoneID string, now time.Time) {
	s.SlotID = null.StringFrom(slotID)
	s.ZoneID = null.StringFrom(zoneID)
	s.UpdatedAt = now
}

// Complete закрывает сессию с рассчитанной длительностью и стоимостью
func (s *Session) Complete(exitTime time.Time, exitMethod string, durationMinutes int64, totalCost float64) {
	s.ExitTime = null.TimeFrom(exitTime)
	s.ExitMethod = null.StringFrom(exitMethod)
	s.DurationMinutes = null.IntFrom(durationMinutes)
	s.TotalCost = null.FloatFrom(totalCost)
	s.PaymentStatus = PaymentCompleted
	s.Status = SessionCompleted
	s.UpdatedAt = exitTime
}

// FindSessionIndex возвращает индекс сессии в коллекции или -1
func FindSessionIndex(sessions []Session, id string) int {
	for i := range sessions {
		if sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// FindActiveSessionIndex возвращает индекс активной сессии пользователя или -1
func FindActiveSessionIndex(sessions []Session, userID string) int {
	for i := range sessions {
		if sessions[i].UserID == userID && sessions[i].IsActive() {
			return i
		}
	}
	return -1
}
