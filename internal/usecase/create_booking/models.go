package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на бронирование диапазона
type Request struct {
	BookingLink string           // Публичная ссылка бронирования
	Date        time.Time        // Дата бронирования (без времени)
	TimeRange   domain.TimeRange // Бронируемый диапазон (начало и конец)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	BookingLink string           // Ссылка бронирования
	Date        time.Time        // Дата бронирования
	TimeRange   domain.TimeRange // Забронированный диапазон
	CreatedAt   time.Time        // Время создания
}
