package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса идентификации (пользователи, роли, автомобили, QR коды, тарифы)
// Ядро только читает данные, UpdateUser используется административными сценариями
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUser получает пользователя по ID
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	path := fmt.Sprintf("/internal/users/%s", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &user, ErrUserNotFound); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetRole получает роль по ID
func (c *Client) GetRole(ctx context.Context, roleID int64) (*Role, error) {
	var role Role
	path := fmt.Sprintf("/internal/roles/%d", roleID)
	if err := c.do(ctx, http.MethodGet, path, nil, &role, ErrRoleNotFound); err != nil {
		return nil, err
	}
	return &role, nil
}

// GetVehicles получает автомобили пользователя
// Пользователь без автомобилей - пустой список, а не ошибка
func (c *Client) GetVehicles(ctx context.Context, userID string) ([]Vehicle, error) {
	vehicles := make([]Vehicle, 0)
	path := fmt.Sprintf("/internal/users/%s/vehicles", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &vehicles, ErrUserNotFound); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetQRCode получает QR код пользователя
func (c *Client) GetQRCode(ctx context.Context, userID string) (*QRCode, error) {
	var qr QRCode
	path := fmt.Sprintf("/internal/users/%s/qr-code", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &qr, ErrQRCodeNotFound); err != nil {
		return nil, err
	}
	return &qr, nil
}

// GetPricing получает тариф роли
func (c *Client) GetPricing(ctx context.Context, roleID int64) (*PricingRule, error) {
	var rule PricingRule
	path := fmt.Sprintf("/internal/roles/%d/pricing", roleID)
	if err := c.do(ctx, http.MethodGet, path, nil, &rule, ErrPricingNotFound); err != nil {
		return nil, err
	}
	return &rule, nil
}

// UpdateUser частично обновляет пользователя и возвращает результат
func (c *Client) UpdateUser(ctx context.Context, userID string, update UserUpdate) (*User, error) {
	var user User
	path := fmt.Sprintf("/internal/users/%s", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodPatch, path, update, &user, ErrUserNotFound); err != nil {
		return nil, err
	}
	return &user, nil
}

// RatePerHour возвращает почасовую ставку пользователя по его роли
// Возвращает ErrUserNotFound или ErrPricingNotFound, если ставку определить нельзя
func (c *Client) RatePerHour(ctx context.Context, userID string) (float64, error) {
	user, err := c.GetUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user.RoleID == 0 {
		return 0, fmt.Errorf("%w: user %s has no role", ErrPricingNotFound, userID)
	}

	rule, err := c.GetPricing(ctx, user.RoleID)
	if err != nil {
		return 0, err
	}
	if rule.RatePerHour <= 0 {
		return 0, fmt.Errorf("%w: role %d has no rate", ErrPricingNotFound, user.RoleID)
	}

	return rule.RatePerHour, nil
}

// do выполняет запрос и декодирует ответ в out. 404 превращается в errNotFound
func (c *Client) do(ctx context.Context, method, path string, body any, out any, errNotFound error) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("IdentityService unavailable for %s %s: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.log.Info("No data found for %s %s", method, path)
		return errNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("IdentityService returned status %d for %s %s", resp.StatusCode, method, path)
		return fmt.Errorf("%w: %s %s: unexpected status code %d: %s",
			ErrInvalidResponse, method, path, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("Failed to decode IdentityService response for %s %s: %v", method, path, err)
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// IsNotFound возвращает true для ошибок отсутствия данных
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrRoleNotFound) ||
		errors.Is(err, ErrQRCodeNotFound) ||
		errors.Is(err, ErrPricingNotFound)
}
