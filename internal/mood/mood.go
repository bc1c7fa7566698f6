// Package mood derives an entry's mood level from its timestamp. This is a
// deterministic biometric simulation standing in for a future wearable
// integration: the same timestamp always yields the same level.
package mood

import (
	"math"
	"time"
)

const (
	MinLevel = 1
	MaxLevel = 5
)

// FromTimestamp maps a timestamp to a mood level in [1,5]. The level is a
// pure function of hour-of-day and day-of-year: a circadian curve peaking in
// the early afternoon, shifted by a slow day-to-day cycle.
func FromTimestamp(t time.Time) int {
	hour := float64(t.Hour())
	day := float64(t.YearDay())

	// Circadian component: trough around 03:00, peak around 15:00
	circadian := math.Sin((hour - 9) / 24 * 2 * math.Pi)

	// Slow drift across the year, roughly monthly period
	drift := math.Sin(day / 30.4 * 2 * math.Pi)

	score := 3.0 + 1.3*circadian + 0.7*drift
	level := int(math.Round(score))
	if level < MinLevel {
		level = MinLevel
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}
