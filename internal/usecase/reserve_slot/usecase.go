package reserve_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
)

// UseCase use case резервирования слота за активной сессией пользователя
type UseCase struct {
	store        RecordStore
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil, тогда уведомления не отправляются
func NewUseCase(store RecordStore, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case резервирования слота
// Слоты и сессии меняются одной атомарной операцией хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: user=%s, zone=%s, slot=%s", req.UserID, req.ZoneID, slotIDForLog(req.SlotID))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		session     domain.Session
		target      domain.Slot
		alert       domain.CapacityAlert
		alertRaised bool
	)

	// 2. Read-modify-write над слотами и сессиями
	err := uc.store.Update(ctx, func(tx *records.Tx) error {
		slots := tx.Slots()
		sessions := tx.Sessions()

		// 2.1. Активная сессия пользователя
		sessionIdx := domain.FindActiveSessionIndex(sessions, req.UserID)
		if sessionIdx < 0 {
			return ErrNoActiveSession
		}
		session = sessions[sessionIdx]

		// 2.2. Автомобиль уже стоит на слоте - менять слот нельзя
		prevIdx := -1
		if session.SlotID.Valid {
			prevIdx = domain.FindSlotIndex(slots, session.SlotID.String)
			if prevIdx >= 0 && slots[prevIdx].Status == domain.SlotOccupied {
				return fmt.Errorf("%w: slot=%s", ErrSlotChangeForbidden, slots[prevIdx].ID)
			}
		}

		// 2.3. Выбираем целевой слот
		targetIdx, err := resolveTarget(slots, req)
		if err != nil {
			return err
		}

		// 2.4. Освобождаем предыдущий слот
		if prevIdx >= 0 && prevIdx != targetIdx {
			prev := slots[prevIdx]
			prev.Release(now)
			tx.PutSlot(prev)
			slots[prevIdx] = prev
		}

		// 2.5. Резервируем новый слот
		target = slots[targetIdx]
		target.Reserve(session.ID, now)
		tx.PutSlot(target)
		slots[targetIdx] = target

		// 2.6. Привязываем сессию к слоту
		session.AssignSlot(target.ID, req.ZoneID, now)
		tx.PutSession(session)

		alert, alertRaised = domain.ZoneCapacityAlert(slots, req.ZoneID, now)
		return nil
	})
	if err != nil {
		if isBusinessError(err) {
			uc.logger.Warn("ReserveSlot: user=%s, zone=%s rejected: %v", req.UserID, req.ZoneID, err)
			return nil, err
		}
		uc.logger.Error("ReserveSlot: failed to update records for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: ReserveSlot - store update: %v", ErrInternal, err)
	}

	uc.logger.Info("ReserveSlot: slot=%s reserved for session=%s", target.ID, session.ID)

	// 3. Уведомления отправляются после записи и не влияют на результат
	if uc.notifier != nil {
		uc.notifier.SessionUpdate(ctx, domain.NewSessionEvent(session, now))
		if alertRaised {
			uc.logger.Warn("ReserveSlot: zone=%s is %d%% full", alert.ZoneID, alert.OccupancyPercentage)
			uc.notifier.ZoneCapacityAlert(ctx, alert)
		}
	}

	return &Response{
		Success:   true,
		SlotID:    target.ID,
		SessionID: session.ID,
		Message:   fmt.Sprintf("Slot %s reserved successfully", target.SlotNumber),
	}, nil
}

// resolveTarget возвращает индекс слота для резервирования
func resolveTarget(slots []domain.Slot, req *Request) (int, error) {
	if req.SlotID == nil {
		idx := domain.FirstAvailableSlotIndex(slots, req.ZoneID)
		if idx < 0 {
			return -1, fmt.Errorf("%w: zone=%s", ErrNoAvailableSlots, req.ZoneID)
		}
		return idx, nil
	}

	idx := domain.FindSlotIndex(slots, *req.SlotID)
	if idx < 0 {
		return -1, fmt.Errorf("%w: slot=%s", ErrSlotNotFound, *req.SlotID)
	}
	if slots[idx].Status != domain.SlotAvailable {
		return -1, fmt.Errorf("%w: slot=%s, status=%s", ErrSlotUnavailable, *req.SlotID, slots[idx].Status)
	}
	if slots[idx].ZoneID != req.ZoneID {
		return -1, fmt.Errorf("%w: slot=%s, zone=%s", ErrZoneMismatch, *req.SlotID, req.ZoneID)
	}

	return idx, nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidStateTransition) ||
		errors.Is(err, domain.ErrResourceUnavailable)
}

func slotIDForLog(slotID *string) string {
	if slotID == nil {
		return "auto"
	}
	return *slotID
}
