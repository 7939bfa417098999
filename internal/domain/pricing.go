package domain

import "time"

// DurationMinutes returns whole minutes between entry and exit, truncated toward zero
// Отрицательная длительность (рассинхронизация часов) считается нулевой
func DurationMinutes(entry, exit time.Time) int64 {
	minutes := int64(exit.Sub(entry) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

// TotalCost returns (durationMinutes / 60) * ratePerHour
func TotalCost(durationMinutes int64, ratePerHour float64) float64 {
	return float64(durationMinutes) / 60 * ratePerHour
}
