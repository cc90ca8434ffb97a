package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Booking represents a visitor's confirmed claim on a slot's time range
// under a specific booking link. Bookings are immutable and permanent:
// once created they are never updated or deleted, and at most one booking
// may exist per (booking link, date, time range).
type Booking struct {
	ID          int64
	BookingLink string
	Date        time.Time // только дата, время обнулено
	StartTime   types.TimeString
	EndTime     types.TimeString
	CreatedAt   time.Time
}

// TimeRange returns the booked interval as a value.
func (b *Booking) TimeRange() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}
