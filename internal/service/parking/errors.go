package parking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrZoneNotFound возвращается, когда зона не найдена
	ErrZoneNotFound = fmt.Errorf("%w: zone not found", domain.ErrNotFound)

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("%w: slot not found", domain.ErrNotFound)

	// ErrSessionNotFound возвращается, когда у пользователя нет активной сессии
	ErrSessionNotFound = fmt.Errorf("%w: active session not found", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("parking service: internal error")
)
