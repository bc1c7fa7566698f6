// Package journal owns the in-memory ordered collection of journal entries
// for the active session. Mutations flow through the reminder engine and the
// recording pipeline; the optional archive gives entries durability across
// sessions.
package journal

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/models"
)

type Store struct {
	mu      sync.Mutex
	profile string
	entries []models.JournalEntry
	archive Archive
}

// NewStore creates an empty entry store. The archive may be nil, in which
// case entries live only for the session.
func NewStore(archive Archive) *Store {
	return &Store{archive: archive}
}

// LoadProfile replaces the store's contents with the archived entries of the
// given profile. Entries from the previous profile never leak through.
func (s *Store) LoadProfile(profile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile
	s.entries = nil
	if s.archive == nil {
		return nil
	}

	entries, err := s.archive.List(profile)
	if err != nil {
		return fmt.Errorf("failed to load entries for profile %s: %w", profile, err)
	}
	s.entries = entries
	s.sortLocked()
	return nil
}

// Profile returns the profile the store currently holds entries for.
func (s *Store) Profile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Add inserts a new entry.
func (s *Store) Add(entry models.JournalEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("entry id cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == entry.ID {
			return fmt.Errorf("entry already exists: %s", entry.ID)
		}
	}
	s.entries = append(s.entries, entry)
	s.sortLocked()
	s.persistLocked(entry)
	return nil
}

// Update replaces the stored entry with the same id, in place.
func (s *Store) Update(entry models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == entry.ID {
			s.entries[i] = entry
			s.persistLocked(entry)
			return nil
		}
	}
	return fmt.Errorf("entry not found: %s", entry.ID)
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (models.JournalEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

// Delete removes an entry. Deletion is always an explicit user action; the
// engine never destroys entries.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			if s.archive != nil {
				if err := s.archive.Delete(s.profile, e); err != nil {
					logger.Warn("Failed to delete archived entry", "id", e.ID, "error", err)
				}
			}
			return nil
		}
	}
	return fmt.Errorf("entry not found: %s", id)
}

// Entries returns all entries ordered by timestamp ascending.
func (s *Store) Entries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// FindPlaceholder returns the unfilled placeholder for (day, slotID), if one
// exists. Once a placeholder's transcript is non-empty it is never selected
// again.
func (s *Store) FindPlaceholder(day, slotID string) (models.JournalEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.IsPrayerEntry && e.PrayerSlotID == slotID && e.Day() == day && e.Transcript == "" {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

// HasSlotEntry reports whether any prayer entry (filled or not) exists for
// (day, slotID).
func (s *Store) HasSlotEntry(day, slotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.IsPrayerEntry && e.PrayerSlotID == slotID && e.Day() == day {
			return true
		}
	}
	return false
}

// EarliestTimestamp returns the timestamp of the oldest entry, if any.
func (s *Store) EarliestTimestamp() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return time.Time{}, false
	}
	return s.entries[0].Timestamp, true
}

func (s *Store) sortLocked() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		if s.entries[i].Timestamp.Equal(s.entries[j].Timestamp) {
			return s.entries[i].ID < s.entries[j].ID
		}
		return s.entries[i].Timestamp.Before(s.entries[j].Timestamp)
	})
}

// persistLocked writes through to the archive, best-effort.
func (s *Store) persistLocked(entry models.JournalEntry) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Store(s.profile, entry); err != nil {
		logger.Warn("Failed to archive entry", "id", entry.ID, "error", err)
	}
}
