package login_user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
)

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeTokenManager struct{}

func (fakeTokenManager) Generate(int64) (string, error) {
	return "token-for-1", nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestExecute_Success(t *testing.T) {
	user := &domain.User{
		ID:           1,
		Username:     "ivan",
		PasswordHash: hashPassword(t, "secret-password"),
		BookingLink:  "link-123",
	}

	uc := NewUseCase(&fakeUserRepo{user: user}, fakeTokenManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Username: "ivan",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "ivan", resp.Username)
	assert.Equal(t, "link-123", resp.BookingLink)
	assert.Equal(t, "token-for-1", resp.Token)
}

func TestExecute_WrongPassword(t *testing.T) {
	user := &domain.User{
		ID:           1,
		Username:     "ivan",
		PasswordHash: hashPassword(t, "secret-password"),
	}

	uc := NewUseCase(&fakeUserRepo{user: user}, fakeTokenManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Username: "ivan",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestExecute_UnknownUsername(t *testing.T) {
	// Неизвестное имя дает тот же ответ, что и неверный пароль
	uc := NewUseCase(&fakeUserRepo{err: userRepo.ErrUserNotFound}, fakeTokenManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Username: "ghost",
		Password: "secret-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeUserRepo{}, fakeTokenManager{}, noopLogger{})

	t.Run("empty username", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Password: "secret-password"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Username: "ivan"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
