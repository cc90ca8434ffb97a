package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetUpcoming(ctx context.Context, bookingLink string, asOfDate time.Time) ([]*domain.Slot, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByBookingLink(ctx context.Context, bookingLink string) (*domain.User, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
