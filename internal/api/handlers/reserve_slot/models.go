package reserve_slot

import reserveSlot "github.com/m04kA/SMC-ParkingService/internal/usecase/reserve_slot"

// ReserveSlotRequest HTTP request model
type ReserveSlotRequest struct {
	UserID string  `json:"userId"`
	ZoneID string  `json:"zoneId"`
	SlotID *string `json:"slotId,omitempty"`
}

// ReserveSlotResponse HTTP response model
type ReserveSlotResponse struct {
	Success   bool   `json:"success"`
	SlotID    string `json:"slotId"`
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveSlotRequest) ToUseCaseRequest() *reserveSlot.Request {
	return &reserveSlot.Request{
		UserID: r.UserID,
		ZoneID: r.ZoneID,
		SlotID: r.SlotID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *ReserveSlotResponse {
	return &ReserveSlotResponse{
		Success:   resp.Success,
		SlotID:    resp.SlotID,
		SessionID: resp.SessionID,
		Message:   resp.Message,
	}
}
