package reserve_slot

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	if req.ZoneID == "" {
		return fmt.Errorf("%w: zoneId is required", ErrInvalidInput)
	}

	if req.SlotID != nil && *req.SlotID == "" {
		return fmt.Errorf("%w: slotId must not be empty", ErrInvalidInput)
	}

	return nil
}
