package start_session

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var entryMethods = map[string]struct{}{
	domain.MethodQR:        {},
	domain.MethodManual:    {},
	domain.MethodApp:       {},
	domain.MethodAutomatic: {},
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	for name, value := range map[string]*string{"qrCodeId": req.QRCodeID, "zoneId": req.ZoneID, "slotId": req.SlotID} {
		if value != nil && *value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, name)
		}
	}

	if req.EntryMethod != nil {
		if _, ok := entryMethods[*req.EntryMethod]; !ok {
			return fmt.Errorf("%w: unknown entry method %q", ErrInvalidInput, *req.EntryMethod)
		}
	}

	return nil
}
