package register_user

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// TokenManager интерфейс выпуска токенов
type TokenManager interface {
	Generate(userID int64) (string, error)
}

// LinkGenerator интерфейс генерации ссылок бронирования (для тестирования)
type LinkGenerator interface {
	NewLink() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
