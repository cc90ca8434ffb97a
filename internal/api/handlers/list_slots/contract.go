package list_slots

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/slots/models"
)

type SlotsService interface {
	ListUpcoming(ctx context.Context, bookingLink string) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
