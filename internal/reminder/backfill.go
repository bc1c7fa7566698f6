package reminder

import (
	"fmt"
	"time"

	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/utils"
)

// BackfillResult reports what a backfill pass changed.
type BackfillResult struct {
	DaysScanned     int
	EntriesCreated  int
	SlotsBackfilled int
}

// RunBackfill walks every calendar day from the profile's earliest entry
// through today and synthesizes the prayer entries the live trigger missed:
// one placeholder per enabled slot per past day, and per already-elapsed
// slot today. Synthesized slots are recorded as completed at their scheduled
// time. Idempotent: a second pass over the same data changes nothing.
func (e *Engine) RunBackfill() (BackfillResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var result BackfillResult
	now := e.clock()

	settings := e.loadSettingsLocked()
	if !settings.Enabled {
		return result, nil
	}

	start := now
	if earliest, ok := e.entries.EarliestTimestamp(); ok && earliest.Before(start) {
		start = earliest
	}

	today := utils.Today(now)
	nowMinute := utils.MinuteOfDay(now)
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for !day.After(end) {
		dayKey := utils.Today(day)
		result.DaysScanned++

		record := e.loadRecordLocked(dayKey)
		recordDirty := false

		for _, slot := range settings.Slots {
			if !slot.Enabled {
				continue
			}
			// Today only covers slots whose minute has already elapsed;
			// the live trigger owns the current and future minutes.
			if dayKey == today && slot.MinuteOfDay() >= nowMinute {
				continue
			}
			if e.entries.HasSlotEntry(dayKey, slot.ID) {
				continue
			}

			slotTime := slot.TimeOn(day)
			if err := e.ensurePlaceholderLocked(dayKey, slot, slotTime, now); err != nil {
				return result, fmt.Errorf("backfill failed for %s/%s: %w", dayKey, slot.ID, err)
			}
			result.EntriesCreated++

			if record.MarkCompleted(slot.ID, slotTime) {
				recordDirty = true
				result.SlotsBackfilled++
			}
		}

		if recordDirty {
			if err := e.store.SaveCompletionRecord(e.profile, record); err != nil {
				return result, fmt.Errorf("failed to save completion record for %s: %w", dayKey, err)
			}
		}

		day = day.AddDate(0, 0, 1)
	}

	if result.EntriesCreated > 0 {
		logger.Info("Backfilled missed prayer slots",
			"profile", e.profile,
			"days", result.DaysScanned,
			"entries", result.EntriesCreated)
	}
	return result, nil
}
