package register_user

// Request модель запроса на регистрацию владельца
type Request struct {
	Username string // Имя пользователя
	Password string // Пароль в открытом виде (хэшируется внутри usecase)
}

// Response модель ответа с созданным владельцем
type Response struct {
	UserID      int64  // ID пользователя
	Username    string // Имя пользователя
	BookingLink string // Выданная публичная ссылка бронирования
	Token       string // JWT токен для последующих запросов
}
