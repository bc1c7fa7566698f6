package cli

import (
	"fmt"
	"strings"

	"github.com/selahapp/selah/internal/constants"
	"github.com/selahapp/selah/internal/journal"
	"github.com/selahapp/selah/internal/models"
	"github.com/selahapp/selah/internal/reminder"
	"github.com/selahapp/selah/internal/session"
	"github.com/selahapp/selah/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Session *session.Session
}

// LoadSession loads storage and switches the session to the active profile,
// returning its engine. Commands that touch entries or reminder state go
// through here so every invocation sees a backfilled, current view.
func (c *Context) LoadSession() (*reminder.Engine, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}

	profile, err := c.Store.GetActiveProfile()
	if err != nil {
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}
	if profile == "" {
		profile = constants.DefaultProfile
	}

	if err := c.Session.SwitchProfile(profile); err != nil {
		return nil, err
	}
	return c.Session.Engine(), nil
}

// LoadStore loads storage without spinning up a session and returns the
// active profile. Settings and profile commands use this; they never need
// the backfill that LoadSession runs.
func (c *Context) LoadStore() (string, error) {
	if err := c.Store.Load(); err != nil {
		return "", err
	}
	profile, err := c.Store.GetActiveProfile()
	if err != nil {
		return "", fmt.Errorf("failed to get active profile: %w", err)
	}
	if profile == "" {
		profile = constants.DefaultProfile
	}
	return profile, nil
}

// Entries returns the loaded session's entry store.
func (c *Context) Entries() *journal.Store {
	return c.Session.Entries()
}

// ShortID returns the first 8 characters of an id for display.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FindEntryByPrefix resolves an id or unique id prefix to an entry.
func FindEntryByPrefix(entries []models.JournalEntry, idOrPrefix string) (models.JournalEntry, error) {
	var matches []models.JournalEntry
	for _, e := range entries {
		if e.ID == idOrPrefix {
			return e, nil
		}
		if strings.HasPrefix(e.ID, idOrPrefix) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 0:
		return models.JournalEntry{}, fmt.Errorf("no entry found matching %q", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return models.JournalEntry{}, fmt.Errorf("ambiguous entry id %q (%d matches)", idOrPrefix, len(matches))
	}
}

// FormatMoodLevel renders a 1-5 mood level as a compact bar.
func FormatMoodLevel(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	return strings.Repeat("●", level) + strings.Repeat("○", 5-level)
}

// Excerpt shortens text to a single display line.
func Excerpt(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= max {
		return text
	}
	return text[:max-1] + "…"
}
