package start_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	startSession "github.com/m04kA/SMC-ParkingService/internal/usecase/start_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные для начала сессии"
)

type Handler struct {
	useCase StartSessionUseCase
	logger  Logger
}

func NewHandler(useCase StartSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/parking/sessions/start
// 201 для новой сессии, 200 если у пользователя уже есть активная
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/start - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, startSession.ErrInvalidInput) {
			h.logger.Warn("POST /sessions/start - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /sessions/start - Failed to start session: user_id=%s, error=%v", req.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /sessions/start - Session ready: session_id=%s, user_id=%s, created=%t",
		result.Session.ID, req.UserID, result.Created)
	handlers.RespondJSON(w, status, result.Session)
}
