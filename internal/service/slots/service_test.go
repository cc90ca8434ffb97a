package slots

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

type fakeSlotRepo struct {
	slots   []*domain.Slot
	err     error
	gotAsOf time.Time
	gotLink string
}

func (f *fakeSlotRepo) GetUpcoming(_ context.Context, bookingLink string, asOfDate time.Time) ([]*domain.Slot, error) {
	f.gotLink = bookingLink
	f.gotAsOf = asOfDate
	return f.slots, f.err
}

type fakeUserRepo struct {
	user *domain.User
	err  error
}

func (f *fakeUserRepo) GetByBookingLink(_ context.Context, _ string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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

func makeSlot(t *testing.T, date string, start, end string) *domain.Slot {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, date)
	require.NoError(t, err)
	return &domain.Slot{
		BookingLink: "link-123",
		Date:        d,
		StartTime:   mustTime(t, start),
		EndTime:     mustTime(t, end),
	}
}

func newTestService(slotRepo *fakeSlotRepo, users *fakeUserRepo, now time.Time) *Service {
	svc := NewService(slotRepo, users, noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestListUpcoming_GroupsByDate(t *testing.T) {
	now := time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)
	repo := &fakeSlotRepo{slots: []*domain.Slot{
		makeSlot(t, "2025-10-02", "09:00", "09:30"),
		makeSlot(t, "2025-10-02", "10:00", "10:30"),
		makeSlot(t, "2025-10-05", "14:00", "15:00"),
	}}

	svc := newTestService(repo, &fakeUserRepo{user: &domain.User{ID: 1, BookingLink: "link-123"}}, now)

	resp, err := svc.ListUpcoming(context.Background(), "link-123")

	require.NoError(t, err)
	assert.Equal(t, "link-123", resp.BookingLink)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Days, 2)

	assert.Equal(t, "2025-10-02", resp.Days[0].Date)
	require.Len(t, resp.Days[0].Slots, 2)
	assert.Equal(t, "09:00", resp.Days[0].Slots[0].StartTime)
	assert.Equal(t, "10:00", resp.Days[0].Slots[1].StartTime)

	assert.Equal(t, "2025-10-05", resp.Days[1].Date)
	require.Len(t, resp.Days[1].Slots, 1)
	assert.Equal(t, "14:00", resp.Days[1].Slots[0].StartTime)
}

func TestListUpcoming_PassesTodayAsCutoff(t *testing.T) {
	// Репозиторию передается сегодняшняя дата без времени -
	// сегодняшние слоты остаются в выдаче
	now := time.Date(2025, 10, 1, 23, 45, 0, 0, time.UTC)
	repo := &fakeSlotRepo{}

	svc := newTestService(repo, &fakeUserRepo{user: &domain.User{ID: 1, BookingLink: "link-123"}}, now)

	_, err := svc.ListUpcoming(context.Background(), "link-123")

	require.NoError(t, err)
	assert.Equal(t, "link-123", repo.gotLink)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), repo.gotAsOf)
}

func TestListUpcoming_EmptySchedule(t *testing.T) {
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeSlotRepo{}, &fakeUserRepo{user: &domain.User{ID: 1, BookingLink: "link-123"}}, now)

	resp, err := svc.ListUpcoming(context.Background(), "link-123")

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Days)
	assert.NotNil(t, resp.Days)
}

func TestListUpcoming_LinkNotFound(t *testing.T) {
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeSlotRepo{}, &fakeUserRepo{err: userRepo.ErrUserNotFound}, now)

	_, err := svc.ListUpcoming(context.Background(), "unknown")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestListUpcoming_EmptyLink(t *testing.T) {
	now := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeSlotRepo{}, &fakeUserRepo{}, now)

	_, err := svc.ListUpcoming(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
