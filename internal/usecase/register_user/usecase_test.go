package register_user

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
	createErr error
	created   *domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	user.ID = 1
	f.created = user
	return user, nil
}

type fakeTokenManager struct {
	err error
}

func (f *fakeTokenManager) Generate(userID int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-1", nil
}

type fixedLinkGenerator struct {
	link string
}

func (f *fixedLinkGenerator) NewLink() string {
	return f.link
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeUserRepo) *UseCase {
	uc := NewUseCase(repo, &fakeTokenManager{}, bcrypt.MinCost, noopLogger{})
	uc.links = &fixedLinkGenerator{link: "link-fixed"}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Username: "ivan",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "ivan", resp.Username)
	assert.Equal(t, "link-fixed", resp.BookingLink)
	assert.Equal(t, "token-for-1", resp.Token)

	// Пароль хранится только как bcrypt хэш
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "secret-password", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.created.PasswordHash), []byte("secret-password")))
}

func TestExecute_UsernameTaken(t *testing.T) {
	uc := newTestUseCase(&fakeUserRepo{createErr: userRepo.ErrUsernameTaken})

	_, err := uc.Execute(context.Background(), &Request{
		Username: "ivan",
		Password: "secret-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", username: "", password: "secret-password"},
		{name: "username too short", username: "ab", password: "secret-password"},
		{name: "empty password", username: "ivan", password: ""},
		{name: "password too short", username: "ivan", password: "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeUserRepo{})

			_, err := uc.Execute(context.Background(), &Request{
				Username: tt.username,
				Password: tt.password,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
