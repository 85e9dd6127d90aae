package core

import (
	"time"
)

// Timestamp represents a point in time with timezone awareness
type Timestamp time.Time

// NewTimestamp creates a new timestamp from time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Now returns the current timestamp
func Now() Timestamp {
	return Timestamp(time.Now())
}

// Time returns the underlying time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero checks if the timestamp is zero
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// Before returns true if t is before u
func (t Timestamp) Before(u Timestamp) bool {
	return time.Time(t).Before(time.Time(u))
}

// After returns true if t is after u
func (t Timestamp) After(u Timestamp) bool {
	return time.Time(t).After(time.Time(u))
}

// JSON marshaling for Timestamp
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return time.Time(t).MarshalJSON()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var tm time.Time
	if err := tm.UnmarshalJSON(data); err != nil {
		return err
	}
	*t = Timestamp(tm)
	return nil
}

// CivicDate is a calendar date (no clock component) as carried by vote,
// trade and donation records. It marshals as "2006-01-02".
type CivicDate string

// NewCivicDate formats a time as a civic calendar date.
func NewCivicDate(t time.Time) CivicDate {
	return CivicDate(t.Format("2006-01-02"))
}

// Time parses the date back into a time.Time at midnight UTC.
// Returns the zero time for empty or malformed dates.
func (d CivicDate) Time() time.Time {
	t, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the date shifted by the given number of days.
func (d CivicDate) AddDays(days int) CivicDate {
	if d == "" {
		return d
	}
	return NewCivicDate(d.Time().AddDate(0, 0, days))
}

// String returns the date in "2006-01-02" form.
func (d CivicDate) String() string { return string(d) }
