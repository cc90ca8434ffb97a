package get_owner_bookings

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/bookings/models"
)

type BookingsService interface {
	ListForOwner(ctx context.Context, ownerID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
