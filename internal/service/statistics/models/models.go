package models

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Request модели

// SessionHistoryRequest фильтры истории сессий, все поля опциональны
type SessionHistoryRequest struct {
	ZoneID    *string
	UserID    *string
	Status    *string
	StartDate *string // RFC3339 или YYYY-MM-DD
	EndDate   *string // RFC3339 или YYYY-MM-DD (весь день включительно)
}

// RecentActivityRequest запрос последних сессий
type RecentActivityRequest struct {
	ZoneID *string
	Limit  *int // 10 по умолчанию
}

// TrafficFlowRequest запрос загрузки по интервалам
type TrafficFlowRequest struct {
	ZoneID    *string
	DayOfWeek *string // Английское название дня недели, например "Monday"
	Hour      *int    // 0-23, 10 по умолчанию
	Mode      *string // hour (по умолчанию) или day
}

// Response модели

// SlotStatistics количество слотов по статусам
type SlotStatistics struct {
	ZoneID              string                `json:"zoneId,omitempty"`
	Total               int                   `json:"total"`
	Available           int                   `json:"available"`
	Occupied            int                   `json:"occupied"`
	Reserved            int                   `json:"reserved"`
	Maintenance         int                   `json:"maintenance"`
	Used                int                   `json:"used"` // occupied + reserved
	OccupancyPercentage int                   `json:"occupancy_percentage"`
	Alert               *domain.CapacityAlert `json:"alert,omitempty"`
}

// TrafficPoint одна точка графика загрузки
type TrafficPoint struct {
	Label     string `json:"label"`     // "2PM" или "Mon"
	Value     int    `json:"value"`     // 0-100
	Timestamp string `json:"timestamp"` // начало интервала, RFC3339 UTC
}

// FromCounts конвертирует счётчики слотов в response
func FromCounts(zoneID string, counts domain.SlotCounts) *SlotStatistics {
	return &SlotStatistics{
		ZoneID:              zoneID,
		Total:               counts.Total,
		Available:           counts.Available,
		Occupied:            counts.Occupied,
		Reserved:            counts.Reserved,
		Maintenance:         counts.Maintenance,
		Used:                counts.Used(),
		OccupancyPercentage: counts.OccupancyPercentage(),
	}
}
