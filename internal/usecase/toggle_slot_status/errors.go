package toggle_slot_status

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("%w: toggle_slot_status: slot not found", domain.ErrNotFound)

	// ErrSessionNotFound возвращается, когда указанная сессия не найдена
	ErrSessionNotFound = fmt.Errorf("%w: toggle_slot_status: session not found", domain.ErrNotFound)

	// ErrInvalidStatus возвращается при неизвестном статусе слота
	ErrInvalidStatus = fmt.Errorf("%w: toggle_slot_status: invalid slot status", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: toggle_slot_status: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("toggle_slot_status: internal error")
)
