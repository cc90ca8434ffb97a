package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinUsernameLength = 3
	MaxUsernameLength = 64
	MinPasswordLength = 8
	MaxPasswordLength = 72 // ограничение bcrypt
)
