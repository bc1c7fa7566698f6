package utils

import (
	"fmt"
	"time"

	"github.com/selahapp/selah/internal/constants"
)

// Today returns the given moment's date string (YYYY-MM-DD) in its location.
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

// MinuteOfDay returns the number of minutes since midnight for the given moment.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (hour, minute int, err error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	return t.Hour(), t.Minute(), nil
}

// ParseDate parses a date string (YYYY-MM-DD) at midnight in the given location.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// SameDay reports whether two moments fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DaysBetween returns the whole calendar days from a through b (0 when they
// share a day, negative when b precedes a).
func DaysBetween(a, b time.Time) int {
	aMid := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, a.Location())
	bMid := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, b.Location())
	return int(bMid.Sub(aMid).Hours() / 24)
}
