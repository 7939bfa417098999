package end_session

import (
	"context"

	endSession "github.com/m04kA/SMC-ParkingService/internal/usecase/end_session"
)

type EndSessionUseCase interface {
	Execute(ctx context.Context, req *endSession.Request) (*endSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
