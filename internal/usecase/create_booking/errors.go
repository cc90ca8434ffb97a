package create_booking

import "errors"

var (
	// ErrLinkNotFound возвращается, когда ссылка бронирования неизвестна
	ErrLinkNotFound = errors.New("create_booking: booking link not found")

	// ErrSlotNotAvailable возвращается, когда диапазон недоступен:
	// уже забронирован или никогда не существовал как слот
	ErrSlotNotAvailable = errors.New("create_booking: time range is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
