package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout is the canonical HH:MM representation used across the service.
const timeLayout = "15:04"

var (
	// ErrInvalidTimeFormat is returned when a value cannot be parsed as HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time string format")

	// ErrUnsupportedScanType is returned when scanning an unsupported SQL type
	ErrUnsupportedScanType = errors.New("types: unsupported scan type for TimeString")
)

// TimeString is a wall-clock time of day in "HH:MM" form.
// It is stored as TIME in Postgres and compared as minutes since midnight.
type TimeString string

// NewTimeString builds a TimeString from a time.Time, dropping seconds.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the canonical HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// minutes converts the value to minutes since midnight.
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed values compare lexicographically as a fallback.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return string(t) < string(other)
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return TimeString(parsed.Add(time.Duration(m) * time.Minute).Format(timeLayout)), nil
}

// Format parses the value and renders it with the given time layout.
func (t TimeString) Format(layout string) (string, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Format(layout), nil
}

// Value implements driver.Valuer so TimeString can be bound as a query argument.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres returns TIME columns as
// "HH:MM:SS", so seconds are stripped on the way in.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = truncateSeconds(v)
		return nil
	case []byte:
		*t = truncateSeconds(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedScanType, src)
	}
}

func truncateSeconds(s string) TimeString {
	if len(s) > len(timeLayout) {
		return TimeString(s[:len(timeLayout)])
	}
	return TimeString(s)
}
