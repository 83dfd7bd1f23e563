// Package recurrence advances recurring templates through the calendar and
// materializes their due occurrences as expenses.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidFrequency is returned for a frequency outside daily/weekly/monthly/yearly.
var ErrInvalidFrequency = errors.New("invalid frequency")

// Frequency is how often a recurring template repeats.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// ParseFrequency validates a frequency name.
func ParseFrequency(raw string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, raw)
	}
}

// Advance moves date forward one period, anchored on date's own day of month.
func Advance(date time.Time, freq Frequency) (time.Time, error) {
	return AdvanceAnchored(date, freq, date.Day())
}

// AdvanceAnchored moves date forward one period. Daily and weekly add 1 and 7
// days. Monthly and yearly move to the next month or year and land on
// anchorDay, clamped to the last day of the target month: with anchor 31,
// Jan 31 2024 becomes Feb 29 2024, which becomes Mar 31 2024. Yearly keeps
// the month, so Feb 29 2024 becomes Feb 28 2025 and, anchored on 29, returns
// to Feb 29 in 2028. The result is always a valid calendar date strictly
// after date and keeps date's clock time and location.
func AdvanceAnchored(date time.Time, freq Frequency, anchorDay int) (time.Time, error) {
	switch freq {
	case Daily:
		return date.AddDate(0, 0, 1), nil
	case Weekly:
		return date.AddDate(0, 0, 7), nil
	case Monthly:
		year, month, _ := date.Date()
		return clampedDate(date, year, month+1, anchorDay), nil
	case Yearly:
		year, month, _ := date.Date()
		return clampedDate(date, year+1, month, anchorDay), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, string(freq))
	}
}

// clampedDate builds year/month/day on like's clock, normalizing a month of 13
// into January of the next year and clamping day into the month.
func clampedDate(like time.Time, year int, month time.Month, day int) time.Time {
	first := time.Date(year, month, 1, like.Hour(), like.Minute(), like.Second(), like.Nanosecond(), like.Location())
	last := DaysIn(first.Year(), first.Month())
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return first.AddDate(0, 0, day-1)
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
