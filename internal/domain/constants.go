package domain

// Pricing
const (
	// DefaultRatePerHour используется, если тариф пользователя не определён
	DefaultRatePerHour = 0.25
)

// Entry / exit methods
const (
	MethodQR        = "qr"
	MethodManual    = "manual"
	MethodApp       = "app"
	MethodAutomatic = "automatic"
)

// Capacity alert thresholds (occupancy percentage)
const (
	CapacityAlertThreshold = 80
	CapacityHighThreshold  = 90
)

// Statistics defaults
const (
	DefaultSelectedHour        = 10
	DefaultRecentActivityLimit = 10
	BucketRadius               = 3 // Часов до и после выбранного часа
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Notification rooms
const (
	GlobalRoom     = "parking-updates"
	ZoneRoomPrefix = "zone-"
)

// ZoneRoom возвращает имя комнаты подписчиков зоны
func ZoneRoom(zoneID string) string {
	return ZoneRoomPrefix + zoneID
}
