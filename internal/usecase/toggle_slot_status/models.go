package toggle_slot_status

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Request модель запроса на смену статуса слота (оператор или датчик)
type Request struct {
	SlotID    string
	Status    string
	SessionID *string // Сессия, занявшая слот (опционально)
}

// Response обновлённый слот
type Response struct {
	Slot domain.Slot
}
