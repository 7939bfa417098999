package start_session

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Request модель запроса на начало парковочной сессии
type Request struct {
	UserID      string
	QRCodeID    *string // QR код въезда (опционально, иначе QR код пользователя)
	ZoneID      *string
	SlotID      *string
	EntryMethod *string // qr по умолчанию
}

// Response сессия пользователя
// Created=false означает, что вернулась уже существующая активная сессия
type Response struct {
	Session domain.Session
	Created bool
}

// profile данные пользователя из сервиса идентификации для новой сессии
type profile struct {
	vehicleID string
	qrCodeID  string
	rate      float64
}
