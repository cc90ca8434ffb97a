package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrUsernameTaken возвращается при попытке создать пользователя с занятым именем
	ErrUsernameTaken = errors.New("user.repository: username already exists")

	// ErrDuplicateLink возвращается при коллизии ссылки бронирования
	ErrDuplicateLink = errors.New("user.repository: booking link already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
