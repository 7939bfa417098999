package end_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/identity"
)

// UseCase use case завершения парковочной сессии
type UseCase struct {
	store        RecordStore
	pricing      PricingClient
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil, тогда уведомления не отправляются
func NewUseCase(store RecordStore, pricing PricingClient, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		pricing:      pricing,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case завершения сессии
// Длительность округляется вниз до целых минут, ставка берётся из сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EndParkingSession: session=%s", req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EndParkingSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущий тариф нужен только сессиям без сохранённой ставки
	sessions, err := uc.store.Sessions(ctx)
	if err != nil {
		uc.logger.Error("EndParkingSession: failed to read sessions: %v", err)
		return nil, fmt.Errorf("%w: EndParkingSession - read sessions: %v", ErrInternal, err)
	}

	fallbackRate := domain.DefaultRatePerHour
	if idx := domain.FindSessionIndex(sessions, req.SessionID); idx >= 0 && sessions[idx].BaseRate <= 0 {
		fallbackRate = uc.resolveRate(ctx, sessions[idx].UserID)
	}

	exitMethod := domain.MethodQR
	if req.ExitMethod != nil {
		exitMethod = *req.ExitMethod
	}

	now := uc.timeProvider.Now()

	var (
		session      domain.Session
		released     domain.Slot
		slotReleased bool
		duration     int64
		cost         float64
	)

	// 3. Read-modify-write над слотами и сессиями
	err = uc.store.Update(ctx, func(tx *records.Tx) error {
		sessions := tx.Sessions()

		idx := domain.FindSessionIndex(sessions, req.SessionID)
		if idx < 0 {
			return fmt.Errorf("%w: session=%s", ErrSessionNotFound, req.SessionID)
		}
		session = sessions[idx]
		if !session.IsActive() {
			return fmt.Errorf("%w: session=%s, status=%s", ErrSessionNotActive, session.ID, session.Status)
		}

		// 3.1. Стоимость
		rate := session.BaseRate
		if rate <= 0 {
			rate = fallbackRate
		}
		duration = domain.DurationMinutes(session.EntryTime, now)
		cost = domain.TotalCost(duration, rate)

		// 3.2. Освобождаем слот сессии
		if session.SlotID.Valid {
			slots := tx.Slots()
			if slotIdx := domain.FindSlotIndex(slots, session.SlotID.String); slotIdx >= 0 && holdsSession(slots[slotIdx], session.ID) {
				released = slots[slotIdx]
				released.Release(now)
				tx.PutSlot(released)
				slotReleased = true
			}
		}

		// 3.3. Закрываем сессию
		session.Complete(now, exitMethod, duration, cost)
		tx.PutSession(session)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidStateTransition) {
			uc.logger.Warn("EndParkingSession: session=%s rejected: %v", req.SessionID, err)
			return nil, err
		}
		uc.logger.Error("EndParkingSession: failed to update records for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: EndParkingSession - store update: %v", ErrInternal, err)
	}

	uc.logger.Info("EndParkingSession: session=%s completed, duration=%dm, total_cost=%.2f",
		session.ID, duration, cost)

	// 4. Уведомления отправляются после записи и не влияют на результат
	if uc.notifier != nil {
		if slotReleased {
			uc.notifier.SlotUpdate(ctx, domain.NewSlotEvent(released, now))
		}
		uc.notifier.SessionUpdate(ctx, domain.NewSessionEvent(session, now))
	}

	return &Response{
		Session:         session,
		DurationMinutes: duration,
		TotalCost:       cost,
	}, nil
}

// holdsSession слот занят или зарезервирован этой сессией
// Слот без ссылки на сессию (выставлен датчиком) тоже считается занятым ею
func holdsSession(slot domain.Slot, sessionID string) bool {
	if !slot.Status.HoldsSession() {
		return false
	}
	return !slot.CurrentSessionID.Valid || slot.CurrentSessionID.String == sessionID
}

// resolveRate текущая ставка пользователя, при ошибке - ставка по умолчанию
func (uc *UseCase) resolveRate(ctx context.Context, userID string) float64 {
	rate, err := uc.pricing.RatePerHour(ctx, userID)
	if err != nil {
		if identity.IsNotFound(err) {
			uc.logger.Info("EndParkingSession: no pricing for user=%s, using default rate", userID)
		} else {
			uc.logger.Error("EndParkingSession: identity service unavailable for user=%s, using default rate: %v", userID, err)
		}
		return domain.DefaultRatePerHour
	}
	if rate <= 0 {
		return domain.DefaultRatePerHour
	}
	return rate
}
