package toggle_slot_status

import (
	"context"

	toggleSlotStatus "github.com/m04kA/SMC-ParkingService/internal/usecase/toggle_slot_status"
)

type ToggleSlotStatusUseCase interface {
	Execute(ctx context.Context, req *toggleSlotStatus.Request) (*toggleSlotStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
