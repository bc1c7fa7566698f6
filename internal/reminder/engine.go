// Package reminder implements the prayer-reminder engine: a polled state
// machine that activates configured time slots, records completions, and
// correlates submitted recordings with the slot that prompted them.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/selahapp/selah/internal/analysis"
	"github.com/selahapp/selah/internal/journal"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/models"
	"github.com/selahapp/selah/internal/mood"
	"github.com/selahapp/selah/internal/scripture"
	"github.com/selahapp/selah/internal/storage"
	"github.com/selahapp/selah/internal/utils"
)

// Notifier delivers a best-effort desktop notification.
type Notifier interface {
	Notify(text string) error
}

// Config wires an Engine. Store, Entries and Profile are required; the rest
// may be nil/zero and degrade gracefully.
type Config struct {
	Profile  string
	Store    storage.Provider
	Entries  *journal.Store
	Analyzer analysis.Analyzer
	Verses   scripture.Lookup
	Notifier Notifier
	Clock    func() time.Time
}

// Engine owns the reminder state for one profile. All mutations go through
// its mutex; transitions themselves are computed by the pure Evaluate.
type Engine struct {
	mu       sync.Mutex
	profile  string
	store    storage.Provider
	entries  *journal.Store
	analyzer analysis.Analyzer
	verses   scripture.Lookup
	notifier Notifier
	clock    func() time.Time
	state    State
}

func New(cfg Config) *Engine {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Analyzer == nil {
		cfg.Analyzer = analysis.NewHeuristic()
	}
	return &Engine{
		profile:  cfg.Profile,
		store:    cfg.Store,
		entries:  cfg.Entries,
		analyzer: cfg.Analyzer,
		verses:   cfg.Verses,
		notifier: cfg.Notifier,
		clock:    cfg.Clock,
	}
}

// Profile returns the profile this engine serves.
func (e *Engine) Profile() string {
	return e.profile
}

// State returns a copy of the current reminder state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ActiveSlotID returns the currently active slot id, or "" when idle.
func (e *Engine) ActiveSlotID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.ActiveSlotID
}

// CheckReminders runs one polling tick at the given time. Safe to call as
// often as desired; a tick with nothing to do is a no-op.
func (e *Engine) CheckReminders(now time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	settings := e.loadSettingsLocked()
	record := e.loadRecordLocked(utils.Today(now))

	next, effects := Evaluate(e.state, now, settings, record)
	e.state = next
	return e.applyEffectsLocked(now, &record, effects)
}

// HandleDayRollover clears the active and dismissed slot memory when the
// calendar day has changed since the last tick. Runs on a slower cadence
// than CheckReminders so a reminder never survives midnight.
func (e *Engine) HandleDayRollover(now time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := utils.Today(now)
	if e.state.LastCheckedDate != "" && e.state.LastCheckedDate != today {
		e.state.ActiveSlotID = ""
		e.state.DismissedSlotID = ""
		e.state.LastCheckedDate = today
	}
}

// CompleteActiveSlot marks the active slot as satisfied and returns the
// engine to idle. Calling with no active slot is a no-op. Idempotent against
// the completion record: a slot already recorded keeps its original
// timestamp.
func (e *Engine) CompleteActiveSlot() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	active := e.state.ActiveSlotID
	if active == "" {
		return nil
	}

	now := e.clock()
	day := utils.Today(now)
	settings := e.loadSettingsLocked()

	slot, ok := settings.SlotByID(active)
	if !ok {
		// Slot was deleted while active; nothing left to record
		e.state.ActiveSlotID = ""
		e.state.DismissedSlotID = ""
		return nil
	}

	slotTime := slot.TimeOn(now)
	if err := e.ensurePlaceholderLocked(day, slot, slotTime, now); err != nil {
		return err
	}

	record := e.loadRecordLocked(day)
	record.MarkCompleted(slot.ID, slotTime)
	if err := e.store.SaveCompletionRecord(e.profile, record); err != nil {
		return fmt.Errorf("failed to save completion record: %w", err)
	}

	e.state.ActiveSlotID = ""
	e.state.DismissedSlotID = ""
	return nil
}

// DismissActiveSlot drops the active reminder without recording anything
// beyond the activation side effects. The slot stays dismissed for the rest
// of its minute so the next tick does not re-raise it.
func (e *Engine) DismissActiveSlot() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.ActiveSlotID == "" {
		return
	}
	e.state.DismissedSlotID = e.state.ActiveSlotID
	e.state.ActiveSlotID = ""
}

// TodayProgress returns how many of today's enabled slots have been
// satisfied, alongside the enabled slot count.
func (e *Engine) TodayProgress() (completed, total int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	settings := e.loadSettingsLocked()
	record := e.loadRecordLocked(utils.Today(now))

	for _, slot := range settings.Slots {
		if !slot.Enabled {
			continue
		}
		total++
		if record.IsCompleted(slot.ID) {
			completed++
		}
	}
	return completed, total
}

// SubmitRecording runs the transcript through content analysis and stores
// the result. If a prayer slot is active once analysis finishes, the entry
// fills that slot's placeholder (or is created slot-tagged); otherwise it is
// a plain journal entry. The active-slot read deliberately happens after
// analysis returns, so a slot that activates mid-analysis still claims the
// recording.
func (e *Engine) SubmitRecording(ctx context.Context, transcript string) (models.JournalEntry, error) {
	if transcript == "" {
		return models.JournalEntry{}, fmt.Errorf("transcript cannot be empty")
	}

	// Analysis runs outside the lock; it may take arbitrarily long
	result, err := e.analyzer.Analyze(ctx, transcript)
	if err != nil {
		logger.Warn("Content analysis failed, using fallback", "error", err)
		result = analysis.Fallback()
	}

	var scr *models.Scripture
	if result.ScriptureRef != "" {
		scr = e.resolveScripture(ctx, result.ScriptureRef)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	day := utils.Today(now)
	active := e.state.ActiveSlotID

	if active != "" {
		if placeholder, ok := e.entries.FindPlaceholder(day, active); ok {
			placeholder.Transcript = transcript
			placeholder.Summary = result.Summary
			placeholder.Keywords = result.Keywords
			placeholder.Mood = result.Mood
			placeholder.MoodLevel = mood.FromTimestamp(now)
			placeholder.PrayerRequests = result.PrayerRequests
			placeholder.Scripture = scr
			placeholder.UpdatedAt = now
			if err := e.entries.Update(placeholder); err != nil {
				return models.JournalEntry{}, err
			}
			return placeholder, nil
		}
	}

	entry := models.JournalEntry{
		ID:             uuid.NewString(),
		Timestamp:      now,
		Transcript:     transcript,
		Summary:        result.Summary,
		Keywords:       result.Keywords,
		Mood:           result.Mood,
		MoodLevel:      mood.FromTimestamp(now),
		PrayerRequests: result.PrayerRequests,
		Scripture:      scr,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if active != "" {
		entry.IsPrayerEntry = true
		entry.PrayerSlotID = active
	}
	if err := e.entries.Add(entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

// resolveScripture fetches verse text for a detected reference. Lookup
// failures degrade to a reference-only attachment.
func (e *Engine) resolveScripture(ctx context.Context, reference string) *models.Scripture {
	if e.verses == nil {
		return &models.Scripture{Reference: reference}
	}
	s, err := e.verses.FetchVerseText(ctx, reference)
	if err != nil {
		logger.Warn("Verse lookup failed", "reference", reference, "error", err)
		return &models.Scripture{Reference: reference}
	}
	return &s
}

// loadSettingsLocked reads the profile's reminder settings. A storage error
// fails safe: reminders behave as disabled until the store recovers.
func (e *Engine) loadSettingsLocked() models.ReminderSettings {
	settings, err := e.store.GetReminderSettings(e.profile)
	if err != nil {
		logger.Warn("Failed to load reminder settings, treating as disabled", "profile", e.profile, "error", err)
		return models.ReminderSettings{Enabled: false}
	}
	return settings
}

// loadRecordLocked reads today's completion record, yielding an empty record
// when absent or unreadable.
func (e *Engine) loadRecordLocked(day string) models.CompletionRecord {
	record, existed, err := e.store.GetCompletionRecord(e.profile, day)
	if err != nil {
		logger.Warn("Failed to load completion record", "profile", e.profile, "day", day, "error", err)
		return models.NewCompletionRecord(day)
	}
	if !existed {
		return models.NewCompletionRecord(day)
	}
	record.Normalize()
	return record
}

// ensurePlaceholderLocked creates the empty prayer entry for (day, slot) if
// no entry for that slot exists yet. An already-filled entry is left alone.
func (e *Engine) ensurePlaceholderLocked(day string, slot models.TimeSlot, slotTime, now time.Time) error {
	if e.entries.HasSlotEntry(day, slot.ID) {
		return nil
	}
	entry := models.JournalEntry{
		ID:            uuid.NewString(),
		Timestamp:     slotTime,
		IsPrayerEntry: true,
		PrayerSlotID:  slot.ID,
		MoodLevel:     mood.FromTimestamp(slotTime),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return e.entries.Add(entry)
}

func (e *Engine) applyEffectsLocked(now time.Time, record *models.CompletionRecord, effects []Effect) error {
	recordDirty := false
	for _, eff := range effects {
		switch eff.Kind {
		case EffectCreatePlaceholder:
			if err := e.ensurePlaceholderLocked(utils.Today(eff.At), eff.Slot, eff.At, now); err != nil {
				return err
			}
		case EffectMarkCompleted:
			if record.MarkCompleted(eff.Slot.ID, eff.At) {
				recordDirty = true
			}
		case EffectNotify:
			e.notifyLocked(eff.Slot)
		}
	}
	if recordDirty {
		if err := e.store.SaveCompletionRecord(e.profile, *record); err != nil {
			return fmt.Errorf("failed to save completion record: %w", err)
		}
	}
	return nil
}

// notifyLocked sends the slot activation notification, best-effort.
func (e *Engine) notifyLocked(slot models.TimeSlot) {
	if e.notifier == nil {
		return
	}
	text := fmt.Sprintf("Time to pray: %s (%s)", slot.Label, slot.FormatTime())
	if err := e.notifier.Notify(text); err != nil {
		logger.Debug("Notification not delivered", "slot", slot.ID, "error", err)
	}
}
