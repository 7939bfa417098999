package end_session

import (
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}

	if req.ExitMethod != nil {
		switch *req.ExitMethod {
		case domain.MethodQR, domain.MethodManual, domain.MethodApp, domain.MethodAutomatic:
		default:
			return fmt.Errorf("%w: unknown exit method %q", ErrInvalidInput, *req.ExitMethod)
		}
	}

	return nil
}
