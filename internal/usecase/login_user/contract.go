package login_user

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TokenManager интерфейс выпуска токенов
type TokenManager interface {
	Generate(userID int64) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
