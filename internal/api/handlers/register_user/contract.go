package register_user

import (
	"context"

	registerUser "github.com/m04kA/SMC-ScheduleService/internal/usecase/register_user"
)

type RegisterUserUseCase interface {
	Execute(ctx context.Context, req *registerUser.Request) (*registerUser.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
