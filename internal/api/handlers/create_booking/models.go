package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	createBooking "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	TimeRange string `json:"timeRange"` // "10:00-11:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	BookingLink string `json:"bookingLink"`
	Date        string `json:"date"`
	TimeRange   string `json:"timeRange"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и диапазона времени)
func (r *CreateBookingRequest) ToUseCaseRequest(bookingLink string) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим диапазон "HH:MM-HH:MM"
	timeRange, err := domain.ParseTimeRange(r.TimeRange)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BookingLink: bookingLink,
		Date:        date,
		TimeRange:   timeRange,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		BookingLink: resp.BookingLink,
		Date:        resp.Date.Format(domain.DateFormat),
		TimeRange:   resp.TimeRange.String(),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
