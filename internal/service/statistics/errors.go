package statistics

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = fmt.Errorf("%w: statistics: invalid date, expected RFC3339 or YYYY-MM-DD", domain.ErrValidation)

	// ErrInvalidStatus возвращается при неизвестном статусе сессии
	ErrInvalidStatus = fmt.Errorf("%w: statistics: invalid session status", domain.ErrValidation)

	// ErrInvalidDayOfWeek возвращается при неизвестном дне недели
	ErrInvalidDayOfWeek = fmt.Errorf("%w: statistics: invalid day of week", domain.ErrValidation)

	// ErrInvalidHour возвращается, если час вне диапазона 0-23
	ErrInvalidHour = fmt.Errorf("%w: statistics: hour must be between 0 and 23", domain.ErrValidation)

	// ErrInvalidMode возвращается при неизвестном режиме группировки
	ErrInvalidMode = fmt.Errorf("%w: statistics: mode must be hour or day", domain.ErrValidation)

	// ErrInvalidLimit возвращается при неположительном лимите
	ErrInvalidLimit = fmt.Errorf("%w: statistics: limit must be positive", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("statistics service: internal error")
)
