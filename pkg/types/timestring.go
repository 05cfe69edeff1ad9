package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString is returned for values that are not HH:MM clock times.
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString is a clock time of day in "HH:MM" form, the unit used for
// appointment slots. Stored values may carry seconds ("HH:MM:SS"); the
// constructor keeps only the HH:MM prefix, so comparisons ignore seconds.
type TimeString string

// NewTimeString builds a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses "HH:MM" or "HH:MM:SS", keeping the HH:MM prefix.
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed HH:MM clock time.
func (t TimeString) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return ErrInvalidTimeString
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time of day m minutes after t.
// Fails if the result would roll past midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return "", ErrInvalidTimeString
	}
	shifted := parsed.Add(time.Duration(m) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("%w: %s + %d minutes crosses midnight", ErrInvalidTimeString, t, m)
	}
	return TimeString(shifted.Format("15:04")), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as "HH:MM:SS".
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		ts, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		ts, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// MarshalJSON encodes the value as a plain "HH:MM" string.
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON accepts "HH:MM" and "HH:MM:SS" strings.
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
