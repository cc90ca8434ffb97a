package slots

import "errors"

var (
	// ErrLinkNotFound возвращается, когда ссылка бронирования не существует
	ErrLinkNotFound = errors.New("booking link not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
