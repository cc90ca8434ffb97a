package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM (24-часовой)
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time is out of range")
)

// TimeString represents a time-of-day value stored as "HH:MM".
// It maps directly to the Postgres TIME type and compares by a total
// order on time-of-day.
type TimeString string

// NewTimeString создает TimeString из time.Time (берет только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// String returns the canonical "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly before other.
// Invalid values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly after other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Выход за пределы суток считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Value implements driver.Valuer for writing into TIME columns.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
// Postgres возвращает TIME как "HH:MM:SS", секунды отбрасываются.
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	switch v := src.(type) {
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Пробуем полный формат TIME, затем короткий
	for _, layout := range []string{"15:04:05", timeLayout} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = NewTimeString(parsed)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}
