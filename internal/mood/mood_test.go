package mood

import (
	"testing"
	"time"
)

func TestFromTimestamp_Deterministic(t *testing.T) {
	ts := time.Date(2026, 8, 28, 15, 4, 5, 0, time.Local)

	first := FromTimestamp(ts)
	for i := 0; i < 10; i++ {
		if got := FromTimestamp(ts); got != first {
			t.Fatalf("same timestamp produced %d then %d", first, got)
		}
	}
}

func TestFromTimestamp_IgnoresSubHourDetail(t *testing.T) {
	a := time.Date(2026, 8, 28, 15, 0, 0, 0, time.Local)
	b := time.Date(2026, 8, 28, 15, 59, 59, 0, time.Local)

	if FromTimestamp(a) != FromTimestamp(b) {
		t.Error("minutes and seconds should not affect the level")
	}
}

func TestFromTimestamp_Range(t *testing.T) {
	// Sweep every hour of a full year
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 365*24; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		level := FromTimestamp(ts)
		if level < MinLevel || level > MaxLevel {
			t.Fatalf("level %d out of range at %v", level, ts)
		}
	}
}

func TestFromTimestamp_CircadianShape(t *testing.T) {
	// Afternoon should never score below the small hours on the same day
	day := time.Date(2026, 6, 15, 0, 0, 0, 0, time.Local)
	afternoon := FromTimestamp(day.Add(15 * time.Hour))
	night := FromTimestamp(day.Add(3 * time.Hour))

	if afternoon <= night {
		t.Errorf("expected afternoon (%d) above small hours (%d)", afternoon, night)
	}
}
