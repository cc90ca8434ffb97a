package register_user

import "errors"

var (
	// ErrUsernameTaken возвращается, когда имя пользователя уже занято
	ErrUsernameTaken = errors.New("register_user: username already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_user: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_user: internal error")
)
