package end_session

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = fmt.Errorf("%w: end_session: session not found", domain.ErrNotFound)

	// ErrSessionNotActive возвращается при попытке завершить уже завершённую сессию
	ErrSessionNotActive = fmt.Errorf("%w: end_session: session is not active", domain.ErrInvalidStateTransition)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: end_session: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("end_session: internal error")
)
