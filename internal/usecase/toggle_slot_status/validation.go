package toggle_slot_status

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные и возвращает статус слота
func validateRequest(req *Request) (domain.SlotStatus, error) {
	if req.SlotID == "" {
		return "", fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	status := domain.SlotStatus(req.Status)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if req.SessionID != nil && *req.SessionID == "" {
		return "", fmt.Errorf("%w: sessionId must not be empty", ErrInvalidInput)
	}

	return status, nil
}
