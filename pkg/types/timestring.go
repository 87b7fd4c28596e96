package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat layout for TimeString values
const TimeFormat = "15:04"

// ErrInvalidTimeString is returned when a string is not a valid "HH:MM" value
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString represents a time of day as "HH:MM" (e.g. "14:00").
// It is stored and serialized as a plain string, which keeps JSON documents
// and spreadsheet cells human-readable.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only hours and minutes
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates a "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the underlying "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the value is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value parses as "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore reports whether t is strictly earlier in the day than other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Returns an error if the value does not parse or the result crosses midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("%w: %q + %dm crosses midnight", ErrInvalidTimeString, string(t), minutes)
	}

	return TimeString(shifted.Format(TimeFormat)), nil
}
