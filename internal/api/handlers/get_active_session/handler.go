package get_active_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "активная парковочная сессия не найдена"
)

type Handler struct {
	service ParkingService
	logger  Logger
}

func NewHandler(service ParkingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking/sessions/active/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		h.logger.Warn("GET /sessions/active/{userId} - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	session, err := h.service.GetActiveSession(r.Context(), userID)
	if err != nil {
		if errors.Is(err, parking.ErrSessionNotFound) {
			h.logger.Warn("GET /sessions/active/{userId} - No active session: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /sessions/active/{userId} - Failed to get session: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sessions/active/{userId} - Session retrieved: session_id=%s", session.ID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
