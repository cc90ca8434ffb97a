package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Slot represents one owner-declared interval of availability on a
// specific date. Slots are immutable once created; no two slots for the
// same booking link may share the same (date, start time) pair.
type Slot struct {
	ID          int64
	OwnerID     int64
	BookingLink string
	Date        time.Time // только дата, время обнулено
	StartTime   types.TimeString
	EndTime     types.TimeString
	CreatedAt   time.Time
}

// TimeRange returns the slot interval as a value.
func (s *Slot) TimeRange() TimeRange {
	return TimeRange{Start: s.StartTime, End: s.EndTime}
}

// IsUpcoming returns true if the slot date is on or after asOf
// (date-only comparison, time-of-day is ignored).
func (s *Slot) IsUpcoming(asOf time.Time) bool {
	slotDate := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, s.Date.Location())
	asOfDate := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	return !slotDate.Before(asOfDate)
}
