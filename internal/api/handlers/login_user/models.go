package login_user

import (
	loginUser "github.com/m04kA/SMC-ScheduleService/internal/usecase/login_user"
)

// LoginUserRequest HTTP request model
type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginUserResponse HTTP response model
type LoginUserResponse struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	BookingLink string `json:"bookingLink"`
	Token       string `json:"token"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *LoginUserRequest) ToUseCaseRequest() *loginUser.Request {
	return &loginUser.Request{
		Username: r.Username,
		Password: r.Password,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *loginUser.Response) *LoginUserResponse {
	return &LoginUserResponse{
		UserID:      resp.UserID,
		Username:    resp.Username,
		BookingLink: resp.BookingLink,
		Token:       resp.Token,
	}
}
