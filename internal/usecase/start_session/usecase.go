package start_session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/guregu/null.v4"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/records"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/identity"
)

// UseCase use case начала парковочной сессии
// Повторный вызов для пользователя с активной сессией не создаёт новую сессию
type UseCase struct {
	store        RecordStore
	identity     IdentityClient
	notifier     Notifier
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil, тогда уведомления не отправляются
func NewUseCase(store RecordStore, identityClient IdentityClient, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		identity:     identityClient,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выполняет use case начала сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartParkingSession: user=%s", req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartParkingSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Данные пользователя нужны только для новой сессии.
	// Запросы к сервису идентификации выполняются вне блокировки хранилища.
	sessions, err := uc.store.Sessions(ctx)
	if err != nil {
		uc.logger.Error("StartParkingSession: failed to read sessions: %v", err)
		return nil, fmt.Errorf("%w: StartParkingSession - read sessions: %v", ErrInternal, err)
	}

	var (
		p        profile
		resolved bool
	)
	if domain.FindActiveSessionIndex(sessions, req.UserID) < 0 {
		p = uc.resolveProfile(ctx, req.UserID)
		resolved = true
	}

	now := uc.timeProvider.Now()

	var (
		result  domain.Session
		created bool
		changed bool
	)

	// 3. Повторная проверка активной сессии и запись под блокировкой
	// Если сессия была закрыта между чтением и блокировкой, профиль запрашивается
	// вне блокировки и запись повторяется один раз
	for {
		err = uc.store.Update(ctx, func(tx *records.Tx) error {
			sessions := tx.Sessions()

			if idx := domain.FindActiveSessionIndex(sessions, req.UserID); idx >= 0 {
				result = sessions[idx]
				if req.SlotID == nil && req.ZoneID == nil {
					return nil
				}
				mergeLocation(&result, tx.Slots(), req, now)
				tx.PutSession(result)
				changed = true
				return nil
			}

			if !resolved {
				return errProfileRequired
			}

			result = uc.newSession(req, p, tx.Slots(), now)
			tx.PutSession(result)
			created = true
			changed = true
			return nil
		})
		if !errors.Is(err, errProfileRequired) {
			break
		}

		uc.logger.Info("StartParkingSession: active session of user=%s ended concurrently, resolving profile", req.UserID)
		p = uc.resolveProfile(ctx, req.UserID)
		resolved = true
	}
	if err != nil {
		uc.logger.Error("StartParkingSession: failed to update records for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: StartParkingSession - store update: %v", ErrInternal, err)
	}

	switch {
	case created:
		uc.logger.Info("StartParkingSession: created session=%s for user=%s, base_rate=%.2f",
			result.ID, req.UserID, result.BaseRate)
	case changed:
		uc.logger.Info("StartParkingSession: updated location of session=%s for user=%s", result.ID, req.UserID)
	default:
		uc.logger.Info("StartParkingSession: user=%s already has active session=%s", req.UserID, result.ID)
	}

	// 4. Уведомление отправляется после записи
	if changed && uc.notifier != nil {
		uc.notifier.SessionUpdate(ctx, domain.NewSessionEvent(result, now))
	}

	return &Response{Session: result, Created: created}, nil
}

func (uc *UseCase) newSession(req *Request, p profile, slots []domain.Slot, now time.Time) domain.Session {
	session := domain.Session{
		ID:            uc.newID(),
		UserID:        req.UserID,
		EntryTime:     now,
		EntryMethod:   domain.MethodQR,
		BaseRate:      p.rate,
		PaymentStatus: domain.PaymentPending,
		Status:        domain.SessionActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if p.vehicleID != "" {
		session.VehicleID = null.StringFrom(p.vehicleID)
	}

	switch {
	case req.QRCodeID != nil:
		session.QRCodeID = null.StringFrom(*req.QRCodeID)
	case p.qrCodeID != "":
		session.QRCodeID = null.StringFrom(p.qrCodeID)
	}

	if req.EntryMethod != nil {
		session.EntryMethod = *req.EntryMethod
	}

	mergeLocation(&session, slots, req, now)
	return session
}

// mergeLocation переносит слот и зону из запроса в сессию
// Если зона не указана, она берётся из слота
func mergeLocation(session *domain.Session, slots []domain.Slot, req *Request, now time.Time) {
	if req.SlotID != nil {
		session.SlotID = null.StringFrom(*req.SlotID)
		if req.ZoneID == nil {
			if idx := domain.FindSlotIndex(slots, *req.SlotID); idx >= 0 {
				session.ZoneID = null.StringFrom(slots[idx].ZoneID)
			}
		}
	}
	if req.ZoneID != nil {
		session.ZoneID = null.StringFrom(*req.ZoneID)
	}
	session.UpdatedAt = now
}

// resolveProfile получает автомобиль, QR код и тариф пользователя
// Недоступность сервиса идентификации не мешает начать сессию: используются значения по умолчанию
func (uc *UseCase) resolveProfile(ctx context.Context, userID string) profile {
	p := profile{rate: domain.DefaultRatePerHour}

	vehicles, err := uc.identity.GetVehicles(ctx, userID)
	switch {
	case err == nil && len(vehicles) > 0:
		p.vehicleID = vehicles[0].ID
	case err != nil:
		uc.logIdentityError("vehicles", userID, err)
	}

	qr, err := uc.identity.GetQRCode(ctx, userID)
	if err == nil {
		p.qrCodeID = qr.ID
	} else {
		uc.logIdentityError("qr code", userID, err)
	}

	rate, err := uc.identity.RatePerHour(ctx, userID)
	if err == nil && rate > 0 {
		p.rate = rate
	} else if err != nil {
		uc.logIdentityError("pricing", userID, err)
	}

	return p
}

func (uc *UseCase) logIdentityError(what, userID string, err error) {
	if identity.IsNotFound(err) {
		uc.logger.Info("StartParkingSession: no %s for user=%s, using default", what, userID)
		return
	}
	uc.logger.Error("StartParkingSession: identity service unavailable (%s) for user=%s, applying graceful degradation: %v",
		what, userID, err)
}
