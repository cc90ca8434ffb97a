package domain

import "time"

// User represents the owner identity that creates availability slots.
// Each owner gets exactly one booking link, issued at registration;
// the link is the public identifier visitors use to reach the owner's slots.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	BookingLink  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
