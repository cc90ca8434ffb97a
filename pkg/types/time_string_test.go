package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid morning time", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "invalid hour", input: "24:00", wantErr: true},
		{name: "invalid minute", input: "10:60", wantErr: true},
		{name: "normalizes missing leading zero", input: "9:30", want: "09:30"},
		{name: "with seconds", input: "09:30:00", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, types.ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := types.NewTimeString(time.Date(2025, 10, 15, 14, 5, 30, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := types.NewTimeStringFromString("10:30")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestTimeString_Comparisons(t *testing.T) {
	early, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)
	late, err := types.NewTimeStringFromString("17:00")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.False(t, late.IsBefore(early))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(late))

	// Сравнение строгое: равные значения не "до" и не "после"
	assert.False(t, early.IsBefore(early))
	assert.False(t, early.IsAfter(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	t.Run("within day", func(t *testing.T) {
		got, err := ts.AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, "11:30", got.String())
	})

	t.Run("past midnight", func(t *testing.T) {
		_, err := ts.AddMinutes(15 * 60)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrTimeOutOfRange)
	})
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    string
		wantErr bool
	}{
		{name: "postgres time format", src: "14:30:00", want: "14:30"},
		{name: "short format", src: "14:30", want: "14:30"},
		{name: "byte slice", src: []byte("08:15:00"), want: "08:15"},
		{name: "time.Time", src: time.Date(2025, 1, 1, 12, 45, 0, 0, time.UTC), want: "12:45"},
		{name: "nil", src: nil, want: ""},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts types.TimeString
			err := ts.Scan(tt.src)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
		})
	}
}

func TestTimeString_Value(t *testing.T) {
	ts, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)
}
