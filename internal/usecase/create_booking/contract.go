package create_booking

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
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByLinkAndDate(ctx context.Context, bookingLink string, date time.Time) ([]*domain.Booking, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByBookingLink(ctx context.Context, bookingLink string) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
