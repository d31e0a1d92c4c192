// Package localdate handles the calendar-date and wall-clock formats the
// MedVault API uses. Slot and appointment dates travel as local calendar
// strings (YYYY-MM-DD) with a separate IANA zone name, never as UTC instants,
// so a slot created late in the evening does not shift to the next day for
// users west of the server.
package localdate

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDate = errors.New("invalid calendar date, want YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid wall-clock time, want HH:MM")
)

// Date is a calendar date with no time-of-day and no zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Parse parses a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// FromTime extracts the calendar date of t in t's own location.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar date in loc.
func Today(loc *time.Location) Date {
	return FromTime(time.Now().In(loc))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// At combines the date with an HH:MM wall-clock time in loc.
func (d Date) At(hhmm string, loc *time.Location) (time.Time, error) {
	clock, err := time.Parse(TimeLayout, hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	return time.Date(d.Year, d.Month, d.Day, clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

// Combine parses a YYYY-MM-DD date plus an HH:MM time into a time.Time in
// loc. This is the ordering key used for upcoming/past partitioning.
func Combine(date, hhmm string, loc *time.Location) (time.Time, error) {
	d, err := Parse(date)
	if err != nil {
		return time.Time{}, err
	}
	return d.At(hhmm, loc)
}

// MinutesBetween returns the wall-clock minutes from "from" to "to"
// (both HH:MM). Negative when to precedes from.
func MinutesBetween(from, to string) (int, error) {
	f, err := time.Parse(TimeLayout, from)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, from)
	}
	t, err := time.Parse(TimeLayout, to)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, to)
	}
	return (t.Hour()*60 + t.Minute()) - (f.Hour()*60 + f.Minute()), nil
}
