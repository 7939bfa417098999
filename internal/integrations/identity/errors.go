package identity

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("identity: user not found")

	// ErrRoleNotFound возвращается, когда роль не найдена
	ErrRoleNotFound = errors.New("identity: role not found")

	// ErrQRCodeNotFound возвращается, когда у пользователя нет QR кода
	ErrQRCodeNotFound = errors.New("identity: qr code not found")

	// ErrPricingNotFound возвращается, когда для роли нет тарифа
	ErrPricingNotFound = errors.New("identity: pricing rule not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
