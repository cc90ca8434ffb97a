package login_user

// Request модель запроса на вход
type Request struct {
	Username string // Имя пользователя
	Password string // Пароль в открытом виде
}

// Response модель ответа с токеном
type Response struct {
	UserID      int64  // ID пользователя
	Username    string // Имя пользователя
	BookingLink string // Публичная ссылка бронирования владельца
	Token       string // JWT токен для последующих запросов
}
