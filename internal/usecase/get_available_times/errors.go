package get_available_times

import "errors"

var (
	// ErrLinkNotFound возвращается, когда ссылка бронирования неизвестна.
	// Наружу транслируется единым сообщением "ссылка недействительна" -
	// несуществующая и устаревшая ссылки неразличимы.
	ErrLinkNotFound = errors.New("get_available_times: booking link not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_times: internal error")
)
