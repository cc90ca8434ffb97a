package register_user

import (
	registerUser "github.com/m04kA/SMC-ScheduleService/internal/usecase/register_user"
)

// RegisterUserRequest HTTP request model
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterUserResponse HTTP response model
type RegisterUserResponse struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	BookingLink string `json:"bookingLink"`
	Token       string `json:"token"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterUserRequest) ToUseCaseRequest() *registerUser.Request {
	return &registerUser.Request{
		Username: r.Username,
		Password: r.Password,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerUser.Response) *RegisterUserResponse {
	return &RegisterUserResponse{
		UserID:      resp.UserID,
		Username:    resp.Username,
		BookingLink: resp.BookingLink,
		Token:       resp.Token,
	}
}
