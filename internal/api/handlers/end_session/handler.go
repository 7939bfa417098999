package end_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	endSession "github.com/m04kA/SMC-ParkingService/internal/usecase/end_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные для завершения сессии"
	msgSessionNotFound    = "парковочная сессия не найдена"
	msgSessionNotActive   = "парковочная сессия уже завершена"
)

type Handler struct {
	useCase EndSessionUseCase
	logger  Logger
}

func NewHandler(useCase EndSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/parking/sessions/end
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EndSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/end - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, endSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions/end - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, endSession.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/end - Session not found: session_id=%s", req.SessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, endSession.ErrSessionNotActive):
			h.logger.Warn("POST /sessions/end - Session not active: session_id=%s", req.SessionID)
			handlers.RespondConflict(w, msgSessionNotActive)

		default:
			h.logger.Error("POST /sessions/end - Failed to end session: session_id=%s, error=%v", req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/end - Session completed: session_id=%s, duration=%dm, cost=%.2f",
		req.SessionID, result.DurationMinutes, result.TotalCost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
