package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingLink == "" {
		return fmt.Errorf("%w: bookingLink is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Диапазон обязателен - бронирование без выбранного времени отклоняется
	if req.TimeRange.IsZero() {
		return fmt.Errorf("%w: timeRange is required", ErrInvalidInput)
	}

	if err := req.TimeRange.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeRange: %v", ErrInvalidInput, err)
	}

	return nil
}

// findMatchingSlot ищет слот, диапазон которого структурно равен запрошенному
func findMatchingSlot(slots []*domain.Slot, timeRange domain.TimeRange) *domain.Slot {
	for _, slot := range slots {
		if slot.TimeRange().Equal(timeRange) {
			return slot
		}
	}
	return nil
}

// isAlreadyBooked проверяет, что диапазон уже забронирован
func isAlreadyBooked(bookings []*domain.Booking, timeRange domain.TimeRange) bool {
	for _, booking := range bookings {
		if booking.TimeRange().Equal(timeRange) {
			return true
		}
	}
	return false
}
