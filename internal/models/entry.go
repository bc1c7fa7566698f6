package models

import (
	"time"

	"github.com/selahapp/selah/internal/constants"
)

// JournalEntry is a single unit of journal content. Placeholder prayer
// entries are created by the reminder engine or the backfill pass with an
// empty transcript; their Timestamp is the scheduled slot time, not the
// creation time.
type JournalEntry struct {
	ID             string     `json:"id"`
	Timestamp      time.Time  `json:"timestamp"`
	Transcript     string     `json:"transcript"`
	Summary        string     `json:"summary,omitempty"`
	Keywords       []string   `json:"keywords,omitempty"`
	MoodLevel      int        `json:"mood_level"` // 1-5, derived from Timestamp
	Mood           string     `json:"mood,omitempty"`
	IsPrayerEntry  bool       `json:"is_prayer_entry"`
	PrayerSlotID   string     `json:"prayer_slot_id,omitempty"`
	Scripture      *Scripture `json:"scripture,omitempty"`
	PrayerRequests []string   `json:"prayer_requests,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Scripture is an optional enrichment attached after content analysis.
// Text is filled best-effort by the verse lookup and may stay empty.
type Scripture struct {
	Reference   string `json:"reference"`
	Text        string `json:"text,omitempty"`
	Translation string `json:"translation,omitempty"`
}

// Day returns the entry's calendar day (YYYY-MM-DD) in the entry's location.
func (e *JournalEntry) Day() string {
	return e.Timestamp.Format(constants.DateFormat)
}

// IsPlaceholder reports whether this is an unfilled prayer-slot placeholder.
func (e *JournalEntry) IsPlaceholder() bool {
	return e.IsPrayerEntry && e.Transcript == ""
}
