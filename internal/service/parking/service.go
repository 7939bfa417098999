package parking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Service сервис чтения зон, слотов и активных сессий
type Service struct {
	store  RecordStore
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(store RecordStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetZones возвращает все зоны
func (s *Service) GetZones(ctx context.Context) ([]domain.Zone, error) {
	zones, err := s.store.Zones(ctx)
	if err != nil {
		s.logger.Error("GetZones: failed to read zones: %v", err)
		return nil, fmt.Errorf("%w: GetZones - store error: %v", ErrInternal, err)
	}
	return zones, nil
}

// GetZoneByID возвращает зону по ID
func (s *Service) GetZoneByID(ctx context.Context, id string) (*domain.Zone, error) {
	zones, err := s.GetZones(ctx)
	if err != nil {
		return nil, err
	}

	zone, ok := domain.FindZone(zones, id)
	if !ok {
		s.logger.Warn("GetZoneByID: zone id=%s not found", id)
		return nil, fmt.Errorf("%w: id=%s", ErrZoneNotFound, id)
	}
	return &zone, nil
}

// GetZoneByCode возвращает зону по коду (например, "A")
func (s *Service) GetZoneByCode(ctx context.Context, code string) (*domain.Zone, error) {
	zones, err := s.GetZones(ctx)
	if err != nil {
		return nil, err
	}

	zone, ok := domain.FindZoneByCode(zones, code)
	if !ok {
		s.logger.Warn("GetZoneByCode: zone code=%s not found", code)
		return nil, fmt.Errorf("%w: code=%s", ErrZoneNotFound, code)
	}
	return &zone, nil
}

// GetSlots возвращает слоты зоны в порядке хранения, пустой zoneID - все слоты
func (s *Service) GetSlots(ctx context.Context, zoneID string) ([]domain.Slot, error) {
	slots, err := s.store.Slots(ctx)
	if err != nil {
		s.logger.Error("GetSlots: failed to read slots: %v", err)
		return nil, fmt.Errorf("%w: GetSlots - store error: %v", ErrInternal, err)
	}
	return domain.SlotsInZone(slots, zoneID), nil
}

// GetSlotByID возвращает слот по ID
func (s *Service) GetSlotByID(ctx context.Context, id string) (*domain.Slot, error) {
	slots, err := s.GetSlots(ctx, "")
	if err != nil {
		return nil, err
	}

	idx := domain.FindSlotIndex(slots, id)
	if idx < 0 {
		s.logger.Warn("GetSlotByID: slot id=%s not found", id)
		return nil, fmt.Errorf("%w: id=%s", ErrSlotNotFound, id)
	}
	return &slots[idx], nil
}

// GetSlotByNumber возвращает слот по номеру (например, "A-01")
// Непустой zoneCode ограничивает поиск зоной с этим кодом
func (s *Service) GetSlotByNumber(ctx context.Context, number, zoneCode string) (*domain.Slot, error) {
	zoneID := ""
	if zoneCode != "" {
		zone, err := s.GetZoneByCode(ctx, zoneCode)
		if err != nil {
			return nil, err
		}
		zoneID = zone.ID
	}

	slots, err := s.GetSlots(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		if slots[i].SlotNumber == number {
			return &slots[i], nil
		}
	}

	s.logger.Warn("GetSlotByNumber: slot number=%s not found in zone=%q", number, zoneCode)
	return nil, fmt.Errorf("%w: number=%s zone=%q", ErrSlotNotFound, number, zoneCode)
}

// GetActiveSession возвращает активную сессию пользователя
func (s *Service) GetActiveSession(ctx context.Context, userID string) (*domain.Session, error) {
	sessions, err := s.store.Sessions(ctx)
	if err != nil {
		s.logger.Error("GetActiveSession: failed to read sessions: %v", err)
		return nil, fmt.Errorf("%w: GetActiveSession - store error: %v", ErrInternal, err)
	}

	idx := domain.FindActiveSessionIndex(sessions, userID)
	if idx < 0 {
		s.logger.Info("GetActiveSession: user=%s has no active session", userID)
		return nil, fmt.Errorf("%w: user=%s", ErrSessionNotFound, userID)
	}
	return &sessions[idx], nil
}
