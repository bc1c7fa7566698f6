package models

import "time"

// CompletionRecord tracks which reminder slots have been satisfied on a
// single day for one profile. A slot id appears in CompletedSlots iff it has
// an entry in CompletedAt.
type CompletionRecord struct {
	Date           string               `json:"date"` // YYYY-MM-DD
	CompletedSlots []string             `json:"completed_slots"`
	CompletedAt    map[string]time.Time `json:"completed_at"`
}

func NewCompletionRecord(date string) CompletionRecord {
	return CompletionRecord{
		Date:        date,
		CompletedAt: make(map[string]time.Time),
	}
}

// IsCompleted reports whether the slot has been satisfied on this day.
func (r *CompletionRecord) IsCompleted(slotID string) bool {
	if r.CompletedAt != nil {
		if _, ok := r.CompletedAt[slotID]; ok {
			return true
		}
	}
	for _, id := range r.CompletedSlots {
		if id == slotID {
			return true
		}
	}
	return false
}

// MarkCompleted records the slot as satisfied at the given time. Idempotent:
// a slot already marked keeps its original timestamp and the call returns
// false.
func (r *CompletionRecord) MarkCompleted(slotID string, at time.Time) bool {
	if r.IsCompleted(slotID) {
		return false
	}
	if r.CompletedAt == nil {
		r.CompletedAt = make(map[string]time.Time)
	}
	r.CompletedSlots = append(r.CompletedSlots, slotID)
	r.CompletedAt[slotID] = at
	return true
}

// CompletedCount returns the number of satisfied slots.
func (r *CompletionRecord) CompletedCount() int {
	return len(r.CompletedSlots)
}

// Normalize repairs the CompletedSlots/CompletedAt pairing invariant after a
// load from storage: slots without a timestamp get the day's midnight, and
// timestamps without a listed slot are surfaced in CompletedSlots.
func (r *CompletionRecord) Normalize() {
	if r.CompletedAt == nil {
		r.CompletedAt = make(map[string]time.Time)
	}
	day, err := time.ParseInLocation("2006-01-02", r.Date, time.Local)
	if err != nil {
		day = time.Now()
	}
	for _, id := range r.CompletedSlots {
		if _, ok := r.CompletedAt[id]; !ok {
			r.CompletedAt[id] = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		}
	}
	for id := range r.CompletedAt {
		found := false
		for _, listed := range r.CompletedSlots {
			if listed == id {
				found = true
				break
			}
		}
		if !found {
			r.CompletedSlots = append(r.CompletedSlots, id)
		}
	}
}
