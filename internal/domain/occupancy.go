package domain

import (
	"fmt"
	"math"
	"time"
)

// AlertSeverity уровень предупреждения о заполненности зоны
type AlertSeverity string

const (
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// SlotCounts количество слотов по статусам
type SlotCounts struct {
	Total       int
	Available   int
	Occupied    int
	Reserved    int
	Maintenance int
}

// Used возвращает количество занятых и зарезервированных слотов
func (c SlotCounts) Used() int {
	return c.Occupied + c.Reserved
}

// OccupancyPercentage returns round(100 * used / total), 0 for an empty set
func (c SlotCounts) OccupancyPercentage() int {
	return Percentage(c.Used(), c.Total)
}

// CountSlots считает слоты по статусам
func CountSlots(slots []Slot) SlotCounts {
	counts := SlotCounts{Total: len(slots)}
	for _, s := range slots {
		switch s.Status {
		case SlotAvailable:
			counts.Available++
		case SlotOccupied:
			counts.Occupied++
		case SlotReserved:
			counts.Reserved++
		case SlotMaintenance:
			counts.Maintenance++
		}
	}
	return counts
}

// Percentage returns round(100 * part / total), 0 when total is 0
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// ClampPercentage ограничивает значение диапазоном [0, 100]
func ClampPercentage(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// CapacityAlert событие о высокой заполненности зоны
type CapacityAlert struct {
	ZoneID              string        `json:"zoneId"`
	OccupancyPercentage int           `json:"occupancyPercentage"`
	Message             string        `json:"message"`
	Severity            AlertSeverity `json:"severity"`
	Timestamp           time.Time     `json:"timestamp"`
}

// GlobalMessage сообщение для общей комнаты подписчиков
func (a CapacityAlert) GlobalMessage() string {
	return fmt.Sprintf("Zone %s is %d%% full.", a.ZoneID, a.OccupancyPercentage)
}

// NewCapacityAlert возвращает предупреждение, если заполненность достигла порога
// Повторный вызов при той же заполненности снова создаёт предупреждение
func NewCapacityAlert(zoneID string, occupancyPercentage int, now time.Time) (CapacityAlert, bool) {
	if occupancyPercentage < CapacityAlertThreshold {
		return CapacityAlert{}, false
	}

	severity := SeverityMedium
	if occupancyPercentage >= CapacityHighThreshold {
		severity = SeverityHigh
	}

	return CapacityAlert{
		ZoneID:              zoneID,
		OccupancyPercentage: occupancyPercentage,
		Message: fmt.Sprintf("Zone %s is %d%% full. Consider alternative zones.",
			zoneID, occupancyPercentage),
		Severity:  severity,
		Timestamp: now,
	}, true
}

// ZoneCapacityAlert считает заполненность зоны по коллекции слотов и строит предупреждение
func ZoneCapacityAlert(slots []Slot, zoneID string, now time.Time) (CapacityAlert, bool) {
	counts := CountSlots(SlotsInZone(slots, zoneID))
	return NewCapacityAlert(zoneID, counts.OccupancyPercentage(), now)
}
