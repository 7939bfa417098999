package get_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/parking"
)

const msgNotFound = "парковочное место не найдено"

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

// Handle GET /api/v1/parking/slots/{slotId}?zoneCode=
// slotId может быть как ID слота, так и его номером (A-01), zoneCode сужает поиск по номеру
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]
	zoneCode := r.URL.Query().Get("zoneCode")

	slot, err := h.service.GetSlotByID(r.Context(), slotID)
	if errors.Is(err, parking.ErrSlotNotFound) {
		slot, err = h.service.GetSlotByNumber(r.Context(), slotID, zoneCode)
	}
	if err != nil {
		if errors.Is(err, parking.ErrSlotNotFound) || errors.Is(err, parking.ErrZoneNotFound) {
			h.logger.Warn("GET /slots/{id} - Slot not found: slot_id=%s, zone_code=%s", slotID, zoneCode)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /slots/{id} - Failed to get slot: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slot)
}
