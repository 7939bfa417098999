package get_zone

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type ParkingService interface {
	GetZoneByID(ctx context.Context, id string) (*domain.Zone, error)
	GetZoneByCode(ctx context.Context, code string) (*domain.Zone, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
