package get_available_times

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByLinkAndDate(ctx context.Context, bookingLink string, date time.Time) ([]*domain.Slot, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByLinkAndDate(ctx context.Context, bookingLink string, date time.Time) ([]*domain.Booking, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByBookingLink(ctx context.Context, bookingLink string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
