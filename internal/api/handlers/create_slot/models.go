package create_slot

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	createSlot "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_slot"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"ownerId"`
	BookingLink string `json:"bookingLink"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// ID владельца приходит из контекста аутентификации, не из тела
func (r *CreateSlotRequest) ToUseCaseRequest(ownerID int64) (*createSlot.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала и конца
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createSlot.Request{
		OwnerID:   ownerID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSlot.Response) *SlotResponse {
	return &SlotResponse{
		ID:          resp.ID,
		OwnerID:     resp.OwnerID,
		BookingLink: resp.BookingLink,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
