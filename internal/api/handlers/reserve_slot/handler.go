package reserve_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	reserveSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не указан пользователь или зона"
	msgNoActiveSession    = "активная парковочная сессия не найдена"
	msgSlotChangeDenied   = "нельзя сменить место после постановки автомобиля"
	msgSlotNotFound       = "парковочное место не найдено"
	msgSlotUnavailable    = "парковочное место недоступно"
	msgZoneMismatch       = "парковочное место не принадлежит выбранной зоне"
	msgNoAvailableSlots   = "в зоне нет свободных мест"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/parking/reserve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reserve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /reserve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reserveSlot.ErrNoActiveSession):
			h.logger.Warn("POST /reserve - No active session: user_id=%s", req.UserID)
			handlers.RespondNotFound(w, msgNoActiveSession)

		case errors.Is(err, reserveSlot.ErrSlotChangeForbidden):
			h.logger.Warn("POST /reserve - Slot change forbidden: user_id=%s", req.UserID)
			handlers.RespondConflict(w, msgSlotChangeDenied)

		case errors.Is(err, reserveSlot.ErrSlotNotFound):
			h.logger.Warn("POST /reserve - Slot not found: user_id=%s", req.UserID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, reserveSlot.ErrSlotUnavailable):
			h.logger.Warn("POST /reserve - Slot unavailable: user_id=%s", req.UserID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, reserveSlot.ErrZoneMismatch):
			h.logger.Warn("POST /reserve - Zone mismatch: user_id=%s, zone_id=%s", req.UserID, req.ZoneID)
			handlers.RespondConflict(w, msgZoneMismatch)

		case errors.Is(err, reserveSlot.ErrNoAvailableSlots):
			h.logger.Warn("POST /reserve - No available slots: zone_id=%s", req.ZoneID)
			handlers.RespondConflict(w, msgNoAvailableSlots)

		default:
			h.logger.Error("POST /reserve - Failed to reserve slot: user_id=%s, zone_id=%s, error=%v",
				req.UserID, req.ZoneID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reserve - Slot reserved: slot_id=%s, session_id=%s", result.SlotID, result.SessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
