package statistics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/statistics/models"
)

// Service сервис статистики загрузки парковки
// Только читает хранилище и никогда не отправляет уведомлений
type Service struct {
	store        RecordStore
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
// location - часовой пояс, в котором строятся дневные и часовые интервалы
func NewService(store RecordStore, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		store:        store,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetSlotStatistics считает слоты по статусам для зоны или всех зон (пустой zoneID)
// Для зоны дополнительно возвращается предупреждение о заполненности, если порог достигнут
func (s *Service) GetSlotStatistics(ctx context.Context, zoneID string) (*models.SlotStatistics, error) {
	slots, err := s.store.Slots(ctx)
	if err != nil {
		s.logger.Error("GetSlotStatistics: failed to read slots: %v", err)
		return nil, fmt.Errorf("%w: GetSlotStatistics - store error: %v", ErrInternal, err)
	}

	counts := domain.CountSlots(domain.SlotsInZone(slots, zoneID))
	result := models.FromCounts(zoneID, counts)

	if zoneID != "" {
		if alert, ok := domain.NewCapacityAlert(zoneID, result.OccupancyPercentage, s.timeProvider.Now()); ok {
			result.Alert = &alert
		}
	}

	return result, nil
}

// GetSessionHistory возвращает сессии по фильтрам, новые первыми
func (s *Service) GetSessionHistory(ctx context.Context, req *models.SessionHistoryRequest) ([]domain.Session, error) {
	filter, err := parseHistoryFilter(req, s.location)
	if err != nil {
		s.logger.Warn("GetSessionHistory: invalid filter: %v", err)
		return nil, err
	}

	sessions, err := s.store.Sessions(ctx)
	if err != nil {
		s.logger.Error("GetSessionHistory: failed to read sessions: %v", err)
		return nil, fmt.Errorf("%w: GetSessionHistory - store error: %v", ErrInternal, err)
	}

	return history(sessions, filter), nil
}

// GetRecentActivity возвращает последние limit сессий зоны или всех зон
func (s *Service) GetRecentActivity(ctx context.Context, req *models.RecentActivityRequest) ([]domain.Session, error) {
	limit := domain.DefaultRecentActivityLimit
	if req.Limit != nil {
		if *req.Limit <= 0 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, *req.Limit)
		}
		limit = *req.Limit
	}

	sessions, err := s.store.Sessions(ctx)
	if err != nil {
		s.logger.Error("GetRecentActivity: failed to read sessions: %v", err)
		return nil, fmt.Errorf("%w: GetRecentActivity - store error: %v", ErrInternal, err)
	}

	result := history(sessions, historyFilter{zoneID: deref(req.ZoneID)})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// GetTrafficFlow строит 7 точек загрузки в режиме hour или day
// Значение точки - доля слотов, на которых была открыта сессия в интервале, 0-100
func (s *Service) GetTrafficFlow(ctx context.Context, req *models.TrafficFlowRequest) ([]models.TrafficPoint, error) {
	q, err := parseTrafficQuery(req)
	if err != nil {
		s.logger.Warn("GetTrafficFlow: invalid query: %v", err)
		return nil, err
	}

	// Один снимок слотов и сессий на весь расчёт
	slots, sessions, err := s.store.Snapshot(ctx)
	if err != nil {
		s.logger.Error("GetTrafficFlow: failed to read records: %v", err)
		return nil, fmt.Errorf("%w: GetTrafficFlow - store error: %v", ErrInternal, err)
	}

	totalSlots := len(domain.SlotsInZone(slots, q.zoneID))
	if totalSlots == 0 {
		totalSlots = 1
	}

	candidates := make([]domain.Session, 0, len(sessions))
	for _, session := range sessions {
		if !session.Status.IsValid() {
			continue
		}
		if q.zoneID != "" && session.ZoneID.ValueOrZero() != q.zoneID {
			continue
		}
		candidates = append(candidates, session)
	}

	now := s.timeProvider.Now()
	if q.mode == ModeDay {
		return dayBuckets(candidates, totalSlots, q, now, s.location), nil
	}
	return hourBuckets(candidates, totalSlots, q, now, s.location), nil
}

// history фильтрует и сортирует сессии по entry_time по убыванию
func history(sessions []domain.Session, filter historyFilter) []domain.Session {
	result := make([]domain.Session, 0, len(sessions))
	for _, session := range sessions {
		if filter.match(session) {
			result = append(result, session)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].EntryTime.After(result[j].EntryTime)
	})
	return result
}
