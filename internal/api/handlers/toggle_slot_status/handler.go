package toggle_slot_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	toggleSlotStatus "github.com/m04kA/SMC-ParkingService/internal/usecase/toggle_slot_status"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не указано парковочное место"
	msgInvalidStatus      = "некорректный статус, ожидается available, occupied, reserved или maintenance"
	msgSlotNotFound       = "парковочное место не найдено"
	msgSessionNotFound    = "парковочная сессия не найдена"
)

type Handler struct {
	useCase ToggleSlotStatusUseCase
	logger  Logger
}

func NewHandler(useCase ToggleSlotStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/parking/toggle-status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ToggleSlotStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /toggle-status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, toggleSlotStatus.ErrInvalidStatus):
			h.logger.Warn("POST /toggle-status - Invalid status: slot_id=%s, status=%q", req.SlotID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, toggleSlotStatus.ErrInvalidInput):
			h.logger.Warn("POST /toggle-status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, toggleSlotStatus.ErrSlotNotFound):
			h.logger.Warn("POST /toggle-status - Slot not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, toggleSlotStatus.ErrSessionNotFound):
			h.logger.Warn("POST /toggle-status - Session not found: slot_id=%s", req.SlotID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /toggle-status - Failed to toggle slot status: slot_id=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /toggle-status - Slot status updated: slot_id=%s, status=%s", result.Slot.ID, result.Slot.Status)
	handlers.RespondJSON(w, http.StatusOK, result.Slot)
}
