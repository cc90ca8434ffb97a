package login_user

import (
	"context"

	loginUser "github.com/m04kA/SMC-ScheduleService/internal/usecase/login_user"
)

type LoginUserUseCase interface {
	Execute(ctx context.Context, req *loginUser.Request) (*loginUser.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
