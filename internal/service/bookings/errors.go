package bookings

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда владелец не найден
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
