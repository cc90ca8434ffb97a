package get_available_times

import (
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// availableTimes вычисляет свободные диапазоны: диапазоны слотов минус
// уже забронированные диапазоны. Сравнение структурное - диапазон считается
// занятым только при точном совпадении начала и конца.
//
// Чистая функция своих аргументов, без побочных эффектов.
//
// Примеры:
// - Слоты [09:00-09:30, 10:00-10:30], бронирования [] → [09:00-09:30, 10:00-10:30]
// - Слоты [09:00-09:30, 10:00-10:30], бронирования [09:00-09:30] → [10:00-10:30]
// - Слоты [09:00-09:30], бронирования [09:00-09:30] → []
func availableTimes(slots []*domain.Slot, bookings []*domain.Booking) []domain.TimeRange {
	times := make([]domain.TimeRange, 0, len(slots))

	for _, slot := range slots {
		slotRange := slot.TimeRange()
		if isBooked(slotRange, bookings) {
			continue
		}
		times = append(times, slotRange)
	}

	sortByStartTime(times)

	return times
}

// isBooked проверяет, что диапазон уже забронирован (структурное равенство)
func isBooked(timeRange domain.TimeRange, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking.TimeRange().Equal(timeRange) {
			return true
		}
	}
	return false
}

// sortByStartTime сортирует диапазоны по возрастанию времени начала.
// Стабильный порядок выдачи - контракт ответа.
func sortByStartTime(times []domain.TimeRange) {
	sort.SliceStable(times, func(i, j int) bool {
		return times[i].Start.IsBefore(times[j].Start)
	})
}
