package create_slot

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда владелец не найден
	ErrOwnerNotFound = errors.New("create_slot: owner not found")

	// ErrInvalidDate возвращается, когда дата слота раньше сегодняшней
	ErrInvalidDate = errors.New("create_slot: date must not be in the past")

	// ErrInvalidTimeRange возвращается, когда время конца не позже времени начала
	ErrInvalidTimeRange = errors.New("create_slot: end time must be after start time")

	// ErrDuplicateSlot возвращается, когда слот с такой датой и временем начала уже существует
	ErrDuplicateSlot = errors.New("create_slot: slot with the same date and start time already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_slot: internal error")
)
