package get_available_times

import (
	"context"

	getAvailableTimes "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_times"
)

type GetAvailableTimesUseCase interface {
	Execute(ctx context.Context, req *getAvailableTimes.Request) (*getAvailableTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
