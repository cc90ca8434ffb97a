package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
)

func newMock(t *testing.T) (*user.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return user.NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ivan", "hashed-password", "link-123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))

	created, err := repo.Create(context.Background(), &domain.User{
		Username:     "ivan",
		PasswordHash: "hashed-password",
		BookingLink:  "link-123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UsernameTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ivan", "hashed-password", "link-123").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})

	_, err := repo.Create(context.Background(), &domain.User{
		Username:     "ivan",
		PasswordHash: "hashed-password",
		BookingLink:  "link-123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateLink(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ivan", "hashed-password", "link-123").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_booking_link_key"})

	_, err := repo.Create(context.Background(), &domain.User{
		Username:     "ivan",
		PasswordHash: "hashed-password",
		BookingLink:  "link-123",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrDuplicateLink)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByBookingLink(t *testing.T) {
	repo, mock := newMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "username", "password_hash", "booking_link", "created_at", "updated_at",
	}).
		AddRow(int64(1), "ivan", "hashed-password", "link-123", now, now)

	mock.ExpectQuery("SELECT id, username, password_hash, booking_link, created_at, updated_at FROM users").
		WithArgs("link-123").
		WillReturnRows(rows)

	got, err := repo.GetByBookingLink(context.Background(), "link-123")

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "ivan", got.Username)
	assert.Equal(t, "link-123", got.BookingLink)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT id, username, password_hash, booking_link, created_at, updated_at FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "password_hash", "booking_link", "created_at", "updated_at",
		}))

	_, err := repo.GetByUsername(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
