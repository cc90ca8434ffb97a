package register_user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
)

// UseCase use case регистрации владельца.
// При регистрации выдается уникальная ссылка бронирования (UUID) -
// публичный идентификатор расписания владельца, ровно одна на владельца.
type UseCase struct {
	userRepo   UserRepository
	tokens     TokenManager
	links      LinkGenerator
	bcryptCost int
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	tokens TokenManager,
	bcryptCost int,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:   userRepo,
		tokens:     tokens,
		links:      &UUIDLinkGenerator{},
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// UUIDLinkGenerator генерирует ссылки бронирования как UUID v4
type UUIDLinkGenerator struct{}

// NewLink возвращает новую уникальную ссылку
func (g *UUIDLinkGenerator) NewLink() string {
	return uuid.NewString()
}

// Execute выполняет use case регистрации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RegisterUser: username=%s", req.Username)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterUser: validation failed: %v", err)
		return nil, err
	}

	// 2. Хэшируем пароль
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		uc.logger.Error("RegisterUser: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	// 3. Создаем пользователя с новой ссылкой бронирования.
	// Занятость имени отклонит уникальный индекс БД - предварительная
	// проверка не нужна и не защитила бы от гонки.
	user := &domain.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		BookingLink:  uc.links.NewLink(),
	}

	created, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUsernameTaken) {
			uc.logger.Warn("RegisterUser: username=%s already exists", req.Username)
			return nil, ErrUsernameTaken
		}
		uc.logger.Error("RegisterUser: failed to create user: %v", err)
		return nil, fmt.Errorf("%w: failed to create user: %v", ErrInternal, err)
	}

	// 4. Выпускаем токен
	token, err := uc.tokens.Generate(created.ID)
	if err != nil {
		uc.logger.Error("RegisterUser: failed to generate token for user id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to generate token: %v", ErrInternal, err)
	}

	uc.logger.Info("RegisterUser: successfully registered user id=%d, link=%s", created.ID, created.BookingLink)

	return &Response{
		UserID:      created.ID,
		Username:    created.Username,
		BookingLink: created.BookingLink,
		Token:       token,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	username := strings.TrimSpace(req.Username)

	if username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(username) < domain.MinUsernameLength ||
		utf8.RuneCountInString(username) > domain.MaxUsernameLength {
		return fmt.Errorf("%w: username length must be between %d and %d",
			ErrInvalidInput, domain.MinUsernameLength, domain.MaxUsernameLength)
	}

	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}

	if len(req.Password) < domain.MinPasswordLength || len(req.Password) > domain.MaxPasswordLength {
		return fmt.Errorf("%w: password length must be between %d and %d",
			ErrInvalidInput, domain.MinPasswordLength, domain.MaxPasswordLength)
	}

	return nil
}
