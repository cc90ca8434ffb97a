package login_user

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном имени пользователя или пароле
	ErrInvalidCredentials = errors.New("login_user: invalid username or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("login_user: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("login_user: internal error")
)
