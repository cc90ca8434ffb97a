package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var (
	// ErrInvalidTimeRange возвращается, когда конец диапазона не позже начала
	// или одно из значений не проходит валидацию формата
	ErrInvalidTimeRange = errors.New("domain: invalid time range")
)

// TimeRange is a structural value pairing a start and end time-of-day.
// Equality is structural and is the de-duplication key for bookings.
// The canonical string form is "HH:MM-HH:MM".
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeRange builds a validated TimeRange. End must be strictly after Start.
func NewTimeRange(start, end types.TimeString) (TimeRange, error) {
	r := TimeRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	return r, nil
}

// ParseTimeRange parses the canonical "HH:MM-HH:MM" form.
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}

	start, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	end, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	return NewTimeRange(start, end)
}

// Validate checks the format of both bounds and that End is strictly after Start.
func (r TimeRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if err := r.End.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if !r.End.IsAfter(r.Start) {
		return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidTimeRange, r.End, r.Start)
	}
	return nil
}

// IsZero returns true when both bounds are empty.
func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Equal reports structural equality of both bounds.
func (r TimeRange) Equal(other TimeRange) bool {
	return r.Start == other.Start && r.End == other.End
}

// String returns the canonical "HH:MM-HH:MM" representation.
func (r TimeRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
