package start_session

import startSession "github.com/m04kA/SMC-ParkingService/internal/usecase/start_session"

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	UserID      string  `json:"userId"`
	QRCodeID    *string `json:"qrCodeId,omitempty"`
	ZoneID      *string `json:"zoneId,omitempty"`
	SlotID      *string `json:"slotId,omitempty"`
	EntryMethod *string `json:"entryMethod,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartSessionRequest) ToUseCaseRequest() *startSession.Request {
	return &startSession.Request{
		UserID:      r.UserID,
		QRCodeID:    r.QRCodeID,
		ZoneID:      r.ZoneID,
		SlotID:      r.SlotID,
		EntryMethod: r.EntryMethod,
	}
}
