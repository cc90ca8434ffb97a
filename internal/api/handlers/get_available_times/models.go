package get_available_times

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailableTimes "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	BookingLink string   `json:"bookingLink"`
	Date        string   `json:"date"`
	Times       []string `json:"times"` // Диапазоны "HH:MM-HH:MM" по возрастанию начала
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	times := make([]string, 0, len(resp.Times))
	for _, tr := range resp.Times {
		times = append(times, tr.String())
	}

	return &AvailableTimesResponse{
		BookingLink: resp.BookingLink,
		Date:        resp.Date.Format(domain.DateFormat),
		Times:       times,
	}
}
