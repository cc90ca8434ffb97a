package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestParseTimeRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid range", input: "10:00-11:00", want: "10:00-11:00"},
		{name: "with spaces around dash", input: "10:00 - 11:00", want: "10:00-11:00"},
		{name: "end equals start", input: "10:00-10:00", wantErr: true},
		{name: "end before start", input: "11:00-10:00", wantErr: true},
		{name: "missing dash", input: "10:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage start", input: "abc-11:00", wantErr: true},
		{name: "garbage end", input: "10:00-xyz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseTimeRange(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewTimeRange(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := domain.NewTimeRange(mustTime(t, "09:00"), mustTime(t, "17:00"))
		require.NoError(t, err)
		assert.Equal(t, "09:00-17:00", r.String())
	})

	t.Run("end not after start", func(t *testing.T) {
		_, err := domain.NewTimeRange(mustTime(t, "09:00"), mustTime(t, "09:00"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
	})
}

func TestTimeRange_Equal(t *testing.T) {
	a, err := domain.NewTimeRange(mustTime(t, "10:00"), mustTime(t, "11:00"))
	require.NoError(t, err)
	b, err := domain.NewTimeRange(mustTime(t, "10:00"), mustTime(t, "11:00"))
	require.NoError(t, err)
	c, err := domain.NewTimeRange(mustTime(t, "10:00"), mustTime(t, "12:00"))
	require.NoError(t, err)

	// Равенство структурное: обе границы должны совпасть
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestTimeRange_IsZero(t *testing.T) {
	var zero domain.TimeRange
	assert.True(t, zero.IsZero())

	r, err := domain.NewTimeRange(mustTime(t, "10:00"), mustTime(t, "11:00"))
	require.NoError(t, err)
	assert.False(t, r.IsZero())
}
