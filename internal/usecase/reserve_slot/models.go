package reserve_slot

// Request модель запроса на резервирование слота
type Request struct {
	UserID string  // ID пользователя
	ZoneID string  // ID зоны
	SlotID *string // ID слота (опционально, иначе первый свободный в зоне)
}

// Response результат резервирования
type Response struct {
	Success   bool
	SlotID    string
	SessionID string
	Message   string
}
