package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

// SlotStatus represents the physical state of a parking slot
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotOccupied    SlotStatus = "occupied"
	SlotReserved    SlotStatus = "reserved"
	SlotMaintenance SlotStatus = "maintenance"
)

// IsValid returns true if the status is one of the known slot statuses
func (s SlotStatus) IsValid() bool {
	switch s {
	case SlotAvailable, SlotOccupied, SlotReserved, SlotMaintenance:
		return true
	default:
		return false
	}
}

// HoldsSession returns true if a slot in this status keeps a session reference
func (s SlotStatus) HoldsSession() bool {
	return s == SlotOccupied || s == SlotReserved
}

// Slot represents a single parking slot inside a zone
type Slot struct {
	ID               string      `json:"id"`
	ZoneID           string      `json:"zone_id"`
	SlotNumber       string      `json:"slot_number"`
	Status           SlotStatus  `json:"status"`
	CurrentSessionID null.String `json:"current_session_id"`
	IsActive         bool        `json:"is_active"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// IsAvailable returns true if the slot can be reserved right now
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable && s.IsActive
}

// Release переводит слот в available и снимает ссылку на сессию
func (s *Slot) Release(now time.Time) {
	s.Status = SlotAvailable
	s.CurrentSessionID = null.String{}
	s.UpdatedAt = now
}

// Reserve резервирует слот за сессией
func (s *Slot) Reserve(sessionID string, now time.Time) {
	s.Status = SlotReserved
	s.CurrentSessionID = null.StringFrom(sessionID)
	s.UpdatedAt = now
}

// FindSlotIndex возвращает индекс слота в коллекции или -1
func FindSlotIndex(slots []Slot, id string) int {
	for i := range slots {
		if slots[i].ID == id {
			return i
		}
	}
	return -1
}

// SlotsInZone фильтрует слоты по зоне с сохранением порядка коллекции
// Пустой zoneID означает все зоны
func SlotsInZone(slots []Slot, zoneID string) []Slot {
	if zoneID == "" {
		return slots
	}
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.ZoneID == zoneID {
			result = append(result, s)
		}
	}
	return result
}

// FirstAvailableSlotIndex возвращает индекс первого свободного активного слота зоны или -1
func FirstAvailableSlotIndex(slots []Slot, zoneID string) int {
	for i := range slots {
		if slots[i].ZoneID == zoneID && slots[i].IsAvailable() {
			return i
		}
	}
	return -1
}
