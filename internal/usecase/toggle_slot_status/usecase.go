package toggle_slot_status

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/guregu/null.v4"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
)

// UseCase use case принудительной смены статуса слота
// Переходы не проверяются: оператор может перевести слот в любой статус
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

// Execute выполняет use case смены статуса слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ToggleSlotStatus: slot=%s, status=%s", req.SlotID, req.Status)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ToggleSlotStatus: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		slot        domain.Slot
		alert       domain.CapacityAlert
		alertRaised bool
	)

	// 2. Read-modify-write над слотами и сессиями
	err = uc.store.Update(ctx, func(tx *records.Tx) error {
		slots := tx.Slots()

		slotIdx := domain.FindSlotIndex(slots, req.SlotID)
		if slotIdx < 0 {
			return fmt.Errorf("%w: slot=%s", ErrSlotNotFound, req.SlotID)
		}
		slot = slots[slotIdx]

		// 2.1. Датчик зафиксировал сессию на слоте - чиним привязку сессии
		if status == domain.SlotOccupied && req.SessionID != nil {
			sessions := tx.Sessions()
			sessionIdx := domain.FindSessionIndex(sessions, *req.SessionID)
			if sessionIdx < 0 {
				return fmt.Errorf("%w: session=%s", ErrSessionNotFound, *req.SessionID)
			}

			session := sessions[sessionIdx]
			if !session.SlotID.Valid || session.SlotID.String != slot.ID {
				uc.logger.Warn("ToggleSlotStatus: session=%s slot drift %q -> %q, repairing",
					session.ID, session.SlotID.ValueOrZero(), slot.ID)
				session.AssignSlot(slot.ID, slot.ZoneID, now)
				tx.PutSession(session)
			}
		}

		// 2.2. Применяем статус без проверки перехода
		slot.Status = status
		slot.CurrentSessionID = nextSessionRef(slot, status, req.SessionID)
		slot.UpdatedAt = now
		tx.PutSlot(slot)
		slots[slotIdx] = slot

		alert, alertRaised = domain.ZoneCapacityAlert(slots, slot.ZoneID, now)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.logger.Warn("ToggleSlotStatus: slot=%s rejected: %v", req.SlotID, err)
			return nil, err
		}
		uc.logger.Error("ToggleSlotStatus: failed to update records for slot=%s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: ToggleSlotStatus - store update: %v", ErrInternal, err)
	}

	uc.logger.Info("ToggleSlotStatus: slot=%s is now %s", slot.ID, slot.Status)

	// 3. Уведомления отправляются после записи и не влияют на результат
	if uc.notifier != nil {
		uc.notifier.SlotUpdate(ctx, domain.NewSlotEvent(slot, now))
		if alertRaised {
			uc.logger.Warn("ToggleSlotStatus: zone=%s is %d%% full", alert.ZoneID, alert.OccupancyPercentage)
			uc.notifier.ZoneCapacityAlert(ctx, alert)
		}
	}

	return &Response{Slot: slot}, nil
}

// nextSessionRef ссылка на сессию хранится только у занятого или зарезервированного слота
func nextSessionRef(slot domain.Slot, status domain.SlotStatus, sessionID *string) null.String {
	if !status.HoldsSession() {
		return null.String{}
	}
	if sessionID != nil {
		return null.StringFrom(*sessionID)
	}
	return slot.CurrentSessionID
}
