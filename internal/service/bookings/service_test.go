package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
	gotLink  string
}

func (f *fakeBookingRepo) GetByLink(_ context.Context, bookingLink string) ([]*domain.Booking, error) {
	f.gotLink = bookingLink
	return f.bookings, f.err
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestListForOwner(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:          1,
			BookingLink: "link-123",
			Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			StartTime:   mustTime(t, "10:00"),
			EndTime:     mustTime(t, "11:00"),
			CreatedAt:   time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		},
	}}

	svc := NewService(repo, &fakeUserRepo{user: &domain.User{ID: 7, BookingLink: "link-123"}}, noopLogger{})

	resp, err := svc.ListForOwner(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "link-123", repo.gotLink)
	assert.Equal(t, "link-123", resp.BookingLink)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2025-10-15", resp.Bookings[0].Date)
	assert.Equal(t, "10:00-11:00", resp.Bookings[0].TimeRange)
}

func TestListForOwner_Empty(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeUserRepo{user: &domain.User{ID: 7, BookingLink: "link-123"}}, noopLogger{})

	resp, err := svc.ListForOwner(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Bookings)
}

func TestListForOwner_OwnerNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeUserRepo{err: userRepo.ErrUserNotFound}, noopLogger{})

	_, err := svc.ListForOwner(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}
