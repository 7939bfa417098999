package toggle_slot_status

import toggleSlotStatus "github.com/m04kA/SMC-ParkingService/internal/usecase/toggle_slot_status"

// ToggleSlotStatusRequest HTTP request model
type ToggleSlotStatusRequest struct {
	SlotID    string  `json:"slotId"`
	Status    string  `json:"status"`
	SessionID *string `json:"sessionId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ToggleSlotStatusRequest) ToUseCaseRequest() *toggleSlotStatus.Request {
	return &toggleSlotStatus.Request{
		SlotID:    r.SlotID,
		Status:    r.Status,
		SessionID: r.SessionID,
	}
}
