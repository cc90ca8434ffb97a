package login_user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
)

// UseCase use case входа владельца
type UseCase struct {
	userRepo UserRepository
	tokens   TokenManager
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userRepo UserRepository, tokens TokenManager, logger Logger) *UseCase {
	return &UseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute выполняет use case входа.
// Неизвестное имя и неверный пароль дают один и тот же ответ
// ErrInvalidCredentials, чтобы не раскрывать существование учетной записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LoginUser: username=%s", req.Username)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("LoginUser: validation failed: %v", err)
		return nil, err
	}

	// 2. Ищем пользователя по имени
	user, err := uc.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("LoginUser: username=%s not found", req.Username)
			return nil, ErrInvalidCredentials
		}
		uc.logger.Error("LoginUser: failed to get user by username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 3. Сверяем пароль с хэшем
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		uc.logger.Warn("LoginUser: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	// 4. Выпускаем токен
	token, err := uc.tokens.Generate(user.ID)
	if err != nil {
		uc.logger.Error("LoginUser: failed to generate token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to generate token: %v", ErrInternal, err)
	}

	uc.logger.Info("LoginUser: user id=%d logged in", user.ID)

	return &Response{
		UserID:      user.ID,
		Username:    user.Username,
		BookingLink: user.BookingLink,
		Token:       token,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}
