package end_session

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Request модель запроса на завершение сессии
type Request struct {
	SessionID  string
	ExitMethod *string // qr по умолчанию
}

// Response завершённая сессия с рассчитанной стоимостью
type Response struct {
	Session         domain.Session
	DurationMinutes int64
	TotalCost       float64
}
