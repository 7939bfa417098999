package end_session

import (
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	endSession "github.com/m04kA/SMC-ParkingService/internal/usecase/end_session"
)

// EndSessionRequest HTTP request model
type EndSessionRequest struct {
	SessionID  string  `json:"sessionId"`
	ExitMethod *string `json:"exitMethod,omitempty"`
}

// EndSessionResponse HTTP response model
type EndSessionResponse struct {
	Session         domain.Session `json:"session"`
	DurationMinutes int64          `json:"durationMinutes"`
	TotalCost       float64        `json:"totalCost"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EndSessionRequest) ToUseCaseRequest() *endSession.Request {
	return &endSession.Request{
		SessionID:  r.SessionID,
		ExitMethod: r.ExitMethod,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *endSession.Response) *EndSessionResponse {
	return &EndSessionResponse{
		Session:         resp.Session,
		DurationMinutes: resp.DurationMinutes,
		TotalCost:       resp.TotalCost,
	}
}
