package identity

// User пользователь сервиса идентификации
type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	RoleID int64  `json:"role_id"`
}

// Role роль пользователя, определяет тариф
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Vehicle автомобиль пользователя
type Vehicle struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	LicensePlate string `json:"license_plate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
}

// QRCode QR код пользователя для въезда
type QRCode struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

// PricingRule тариф роли
type PricingRule struct {
	ID          int64   `json:"id"`
	RoleID      int64   `json:"role_id"`
	RatePerHour float64 `json:"rate_per_hour"`
}

// UserUpdate частичное обновление пользователя, nil поля не меняются
type UserUpdate struct {
	Email  *string `json:"email,omitempty"`
	Name   *string `json:"name,omitempty"`
	RoleID *int64  `json:"role_id,omitempty"`
}
