package identitytest

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-ParkingService/internal/integrations/identity"
)

// Fake сервис идентификации в памяти
// Err, если задан, возвращается из всех методов
type Fake struct {
	mu sync.Mutex

	Vehicles map[string][]identity.Vehicle
	QRCodes  map[string]identity.QRCode
	Rates    map[string]float64
	Err      error

	RateCalls int
}

// New создает пустой Fake
func New() *Fake {
	return &Fake{
		Vehicles: make(map[string][]identity.Vehicle),
		QRCodes:  make(map[string]identity.QRCode),
		Rates:    make(map[string]float64),
	}
}

func (f *Fake) GetVehicles(_ context.Context, userID string) ([]identity.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]identity.Vehicle(nil), f.Vehicles[userID]...), nil
}

func (f *Fake) GetQRCode(_ context.Context, userID string) (*identity.QRCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	qr, ok := f.QRCodes[userID]
	if !ok {
		return nil, identity.ErrQRCodeNotFound
	}
	return &qr, nil
}

func (f *Fake) RatePerHour(_ context.Context, userID string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RateCalls++
	if f.Err != nil {
		return 0, f.Err
	}
	rate, ok := f.Rates[userID]
	if !ok {
		return 0, identity.ErrPricingNotFound
	}
	return rate, nil
}
