package statistics

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

// Режимы группировки загрузки
const (
	ModeHour = "hour"
	ModeDay  = "day"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// historyFilter разобранные фильтры истории сессий
type historyFilter struct {
	zoneID string
	userID string
	status domain.SessionStatus
	start  *time.Time
	end    *time.Time
}

func (f historyFilter) match(s domain.Session) bool {
	if f.zoneID != "" && s.ZoneID.ValueOrZero() != f.zoneID {
		return false
	}
	if f.userID != "" && s.UserID != f.userID {
		return false
	}
	if f.status != "" && s.Status != f.status {
		return false
	}
	if f.start != nil && s.EntryTime.Before(*f.start) {
		return false
	}
	if f.end != nil && s.EntryTime.After(*f.end) {
		return false
	}
	return true
}

func parseHistoryFilter(req *models.SessionHistoryRequest, loc *time.Location) (historyFilter, error) {
	var f historyFilter
	f.zoneID = deref(req.ZoneID)
	f.userID = deref(req.UserID)

	if req.Status != nil && *req.Status != "" {
		status := domain.SessionStatus(*req.Status)
		if !status.IsValid() {
			return f, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		f.status = status
	}

	if req.StartDate != nil && *req.StartDate != "" {
		start, err := parseDate(*req.StartDate, false, loc)
		if err != nil {
			return f, err
		}
		f.start = &start
	}

	if req.EndDate != nil && *req.EndDate != "" {
		end, err := parseDate(*req.EndDate, true, loc)
		if err != nil {
			return f, err
		}
		f.end = &end
	}

	return f, nil
}

// parseDate разбирает RFC3339 или YYYY-MM-DD в часовом поясе статистики
// Для конца периода дата без времени означает последний момент этого дня
func parseDate(value string, endOfDay bool, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	day, err := time.ParseInLocation(domain.DateFormat, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	if endOfDay {
		return day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return day, nil
}

// trafficQuery разобранный запрос загрузки
type trafficQuery struct {
	zoneID  string
	hour    int
	mode    string
	weekday *time.Weekday
}

func parseTrafficQuery(req *models.TrafficFlowRequest) (trafficQuery, error) {
	q := trafficQuery{
		zoneID: deref(req.ZoneID),
		hour:   domain.DefaultSelectedHour,
		mode:   ModeHour,
	}

	if req.Hour != nil {
		if *req.Hour < 0 || *req.Hour > 23 {
			return q, fmt.Errorf("%w: got %d", ErrInvalidHour, *req.Hour)
		}
		q.hour = *req.Hour
	}

	if req.Mode != nil && *req.Mode != "" {
		switch *req.Mode {
		case ModeHour, ModeDay:
			q.mode = *req.Mode
		default:
			return q, fmt.Errorf("%w: got %q", ErrInvalidMode, *req.Mode)
		}
	}

	if req.DayOfWeek != nil && *req.DayOfWeek != "" {
		wd, ok := weekdays[strings.ToLower(*req.DayOfWeek)]
		if !ok {
			return q, fmt.Errorf("%w: got %q", ErrInvalidDayOfWeek, *req.DayOfWeek)
		}
		q.weekday = &wd
	}

	return q, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
