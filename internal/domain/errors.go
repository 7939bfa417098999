package domain

import "errors"

// Error kinds. Ошибки usecase оборачивают один из видов через %w,
// обработчики HTTP выбирают код ответа по виду ошибки.
var (
	// ErrNotFound возвращается, когда слот, зона, сессия или пользователь не найдены
	ErrNotFound = errors.New("not found")

	// ErrInvalidStateTransition возвращается при недопустимом переходе состояния
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrResourceUnavailable возвращается, когда запрошенный слот недоступен
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("validation failure")
)
