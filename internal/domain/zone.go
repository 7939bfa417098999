package domain

import "time"

// Zone represents a parking zone (read-only for the parking core)
type Zone struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FindZone возвращает зону по ID и признак того, что она найдена
func FindZone(zones []Zone, id string) (Zone, bool) {
	for _, z := range zones {
		if z.ID == id {
			return z, true
		}
	}
	return Zone{}, false
}

// FindZoneByCode возвращает зону по её коду
func FindZoneByCode(zones []Zone, code string) (Zone, bool) {
	for _, z := range zones {
		if z.Code == code {
			return z, true
		}
	}
	return Zone{}, false
}
