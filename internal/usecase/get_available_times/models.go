package get_available_times

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на получение свободных диапазонов
type Request struct {
	BookingLink string    // Публичная ссылка бронирования
	Date        time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных диапазонов
type Response struct {
	BookingLink string             // Ссылка, по которой запрашивались диапазоны
	Date        time.Time          // Дата, на которую запрашивались диапазоны
	Times       []domain.TimeRange // Свободные диапазоны по возрастанию времени начала
}
