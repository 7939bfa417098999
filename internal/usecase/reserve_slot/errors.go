package reserve_slot

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrNoActiveSession возвращается, когда у пользователя нет активной сессии
	ErrNoActiveSession = fmt.Errorf("%w: reserve_slot: no active parking session found for user", domain.ErrNotFound)

	// ErrSlotChangeForbidden возвращается, когда автомобиль уже стоит на слоте
	ErrSlotChangeForbidden = fmt.Errorf("%w: reserve_slot: cannot change parking slot once the vehicle is already parked", domain.ErrInvalidStateTransition)

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("%w: reserve_slot: slot not found", domain.ErrNotFound)

	// ErrSlotUnavailable возвращается, когда выбранный слот не свободен
	ErrSlotUnavailable = fmt.Errorf("%w: reserve_slot: slot is not available", domain.ErrResourceUnavailable)

	// ErrZoneMismatch возвращается, когда слот не принадлежит зоне
	ErrZoneMismatch = fmt.Errorf("%w: reserve_slot: slot does not belong to zone", domain.ErrResourceUnavailable)

	// ErrNoAvailableSlots возвращается, когда в зоне нет свободных слотов
	ErrNoAvailableSlots = fmt.Errorf("%w: reserve_slot: no available slots in zone", domain.ErrResourceUnavailable)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: reserve_slot: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_slot: internal error")
)
