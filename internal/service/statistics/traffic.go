package statistics

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

// dayOrder порядок столбцов в режиме day
var dayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// hourBuckets 7 интервалов вокруг выбранного часа на опорную дату
// Опорная дата - сегодня или ближайший (текущий или следующий) указанный день недели.
// Часы переходят через полночь по модулю 24, оставаясь на той же дате.
func hourBuckets(sessions []domain.Session, totalSlots int, q trafficQuery, now time.Time, loc *time.Location) []models.TrafficPoint {
	local := now.In(loc)

	candidates := sessions
	dayShift := 0
	if q.weekday != nil {
		candidates = make([]domain.Session, 0, len(sessions))
		for _, s := range sessions {
			if s.EntryTime.In(loc).Weekday() == *q.weekday {
				candidates = append(candidates, s)
			}
		}
		dayShift = (int(*q.weekday) - int(local.Weekday()) + 7) % 7
	}

	points := make([]models.TrafficPoint, 0, 2*domain.BucketRadius+1)
	for i := -domain.BucketRadius; i <= domain.BucketRadius; i++ {
		hour := (q.hour + i + 24) % 24
		start := time.Date(local.Year(), local.Month(), local.Day()+dayShift, hour, 0, 0, 0, loc)
		end := time.Date(local.Year(), local.Month(), local.Day()+dayShift, hour+1, 0, 0, 0, loc)

		points = append(points, bucket(hourLabel(hour), candidates, totalSlots, start, end, now))
	}

	return points
}

// dayBuckets 7 интервалов Mon..Sun в выбранный час
// Каждый день берётся на последнюю не будущую дату этого дня недели.
func dayBuckets(sessions []domain.Session, totalSlots int, q trafficQuery, now time.Time, loc *time.Location) []models.TrafficPoint {
	local := now.In(loc)

	points := make([]models.TrafficPoint, 0, len(dayOrder))
	for _, wd := range dayOrder {
		shift := int(wd) - int(local.Weekday())
		if shift > 0 {
			shift -= 7
		}
		start := time.Date(local.Year(), local.Month(), local.Day()+shift, q.hour, 0, 0, 0, loc)
		end := time.Date(local.Year(), local.Month(), local.Day()+shift, q.hour+1, 0, 0, 0, loc)

		points = append(points, bucket(wd.String()[:3], sessions, totalSlots, start, end, now))
	}

	return points
}

func bucket(label string, sessions []domain.Session, totalSlots int, start, end, now time.Time) models.TrafficPoint {
	count := 0
	for i := range sessions {
		if sessions[i].Overlaps(start, end, now) {
			count++
		}
	}

	return models.TrafficPoint{
		Label:     label,
		Value:     domain.ClampPercentage(domain.Percentage(count, totalSlots)),
		Timestamp: start.UTC().Format(time.RFC3339),
	}
}

// hourLabel час в 12-часовом формате: 0 -> "12AM", 14 -> "2PM"
func hourLabel(hour int) string {
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d%s", display, suffix)
}
