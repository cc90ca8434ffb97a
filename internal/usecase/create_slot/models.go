package create_slot

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модель запроса на создание слота доступности
type Request struct {
	OwnerID   int64            // ID владельца (из токена аутентификации)
	Date      time.Time        // Дата слота (без времени)
	StartTime types.TimeString // Время начала (например, "09:00")
	EndTime   types.TimeString // Время конца (например, "09:30")
}

// Response модель ответа с созданным слотом
type Response struct {
	ID          int64            // ID созданного слота
	OwnerID     int64            // ID владельца
	BookingLink string           // Публичная ссылка бронирования владельца
	Date        time.Time        // Дата слота
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время конца
	CreatedAt   time.Time        // Время создания
}
