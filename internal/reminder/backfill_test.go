package reminder

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/selahapp/selah/internal/journal"
	"github.com/selahapp/selah/internal/models"
)

func seedEntry(t *testing.T, entries *journal.Store, ts time.Time) {
	t.Helper()
	err := entries.Add(models.JournalEntry{
		ID:         uuid.NewString(),
		Timestamp:  ts,
		Transcript: "seed",
		CreatedAt:  ts,
		UpdatedAt:  ts,
	})
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
}

func TestRunBackfill_CoversPastDaysAndElapsedToday(t *testing.T) {
	// Now is 08:30: morning (07:00) has elapsed today, evening (21:00) has not
	clk := &fakeClock{now: at(8, 30)}
	engine, entries, store, _ := newTestEngine(t, clk)

	// Earliest entry three days back
	seedEntry(t, entries, time.Date(2026, 8, 25, 12, 0, 0, 0, time.Local))

	result, err := engine.RunBackfill()
	if err != nil {
		t.Fatalf("RunBackfill failed: %v", err)
	}

	// 3 past days x 2 slots + today's elapsed morning slot
	if result.EntriesCreated != 7 {
		t.Errorf("expected 7 synthesized entries, got %d", result.EntriesCreated)
	}
	if result.DaysScanned != 4 {
		t.Errorf("expected 4 days scanned, got %d", result.DaysScanned)
	}

	// Past day: both slots present with back-dated completions
	record, existed, err := store.GetCompletionRecord("default", "2026-08-26")
	if err != nil || !existed {
		t.Fatalf("expected completion record for past day (existed=%v err=%v)", existed, err)
	}
	if !record.IsCompleted("morning") || !record.IsCompleted("evening") {
		t.Error("past day should have both slots completed")
	}
	wantAt := time.Date(2026, 8, 26, 21, 0, 0, 0, time.Local)
	if got := record.CompletedAt["evening"]; !got.Equal(wantAt) {
		t.Errorf("back-dated completedAt %v, want %v", got, wantAt)
	}

	// Today: morning only
	today, existed, err := store.GetCompletionRecord("default", "2026-08-28")
	if err != nil || !existed {
		t.Fatalf("expected completion record for today (existed=%v err=%v)", existed, err)
	}
	if !today.IsCompleted("morning") {
		t.Error("today's elapsed morning slot should be backfilled")
	}
	if today.IsCompleted("evening") {
		t.Error("today's future evening slot must not be backfilled")
	}
}

func TestRunBackfill_Idempotent(t *testing.T) {
	clk := &fakeClock{now: at(8, 30)}
	engine, entries, _, _ := newTestEngine(t, clk)

	seedEntry(t, entries, time.Date(2026, 8, 27, 9, 0, 0, 0, time.Local))

	first, err := engine.RunBackfill()
	if err != nil {
		t.Fatalf("first RunBackfill failed: %v", err)
	}
	if first.EntriesCreated == 0 {
		t.Fatal("expected the first pass to create entries")
	}

	countAfterFirst := entries.Len()

	second, err := engine.RunBackfill()
	if err != nil {
		t.Fatalf("second RunBackfill failed: %v", err)
	}
	if second.EntriesCreated != 0 || second.SlotsBackfilled != 0 {
		t.Errorf("second pass should change nothing, got %d entries %d slots",
			second.EntriesCreated, second.SlotsBackfilled)
	}
	if entries.Len() != countAfterFirst {
		t.Errorf("entry count changed on second pass: %d -> %d", countAfterFirst, entries.Len())
	}
}

func TestRunBackfill_SkipsExistingSlotEntries(t *testing.T) {
	clk := &fakeClock{now: at(8, 30)}
	engine, entries, _, _ := newTestEngine(t, clk)

	// A filled prayer entry already exists for yesterday's morning slot
	yesterday := time.Date(2026, 8, 27, 7, 0, 0, 0, time.Local)
	err := entries.Add(models.JournalEntry{
		ID:            uuid.NewString(),
		Timestamp:     yesterday,
		Transcript:    "Prayed early before work.",
		IsPrayerEntry: true,
		PrayerSlotID:  "morning",
		CreatedAt:     yesterday,
		UpdatedAt:     yesterday,
	})
	if err != nil {
		t.Fatalf("failed to seed prayer entry: %v", err)
	}

	result, err := engine.RunBackfill()
	if err != nil {
		t.Fatalf("RunBackfill failed: %v", err)
	}

	// Yesterday's evening + today's elapsed morning
	if result.EntriesCreated != 2 {
		t.Errorf("expected 2 synthesized entries, got %d", result.EntriesCreated)
	}
	if entries.HasSlotEntry("2026-08-27", "morning") {
		if _, ok := entries.FindPlaceholder("2026-08-27", "morning"); ok {
			t.Error("backfill must not add a placeholder next to an existing filled entry")
		}
	}
}

func TestRunBackfill_RespectsDisabledSlotsAndGlobalSwitch(t *testing.T) {
	clk := &fakeClock{now: at(8, 30)}
	engine, entries, store, _ := newTestEngine(t, clk)

	seedEntry(t, entries, time.Date(2026, 8, 27, 9, 0, 0, 0, time.Local))

	settings, err := store.GetReminderSettings("default")
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	settings.SetSlotEnabled("evening", false)
	if err := store.SaveReminderSettings("default", settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	result, err := engine.RunBackfill()
	if err != nil {
		t.Fatalf("RunBackfill failed: %v", err)
	}
	// Yesterday's morning + today's elapsed morning; evening is disabled
	if result.EntriesCreated != 2 {
		t.Errorf("expected 2 entries with evening disabled, got %d", result.EntriesCreated)
	}

	// Globally disabled: nothing happens
	settings.Enabled = false
	if err := store.SaveReminderSettings("default", settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}
	result, err = engine.RunBackfill()
	if err != nil {
		t.Fatalf("RunBackfill failed: %v", err)
	}
	if result.EntriesCreated != 0 || result.DaysScanned != 0 {
		t.Errorf("disabled reminders should skip backfill, got %+v", result)
	}
}

func TestRunBackfill_FreshProfileOnlyCoversToday(t *testing.T) {
	clk := &fakeClock{now: at(22, 0)}
	engine, _, store, _ := newTestEngine(t, clk)

	result, err := engine.RunBackfill()
	if err != nil {
		t.Fatalf("RunBackfill failed: %v", err)
	}

	if result.DaysScanned != 1 {
		t.Errorf("fresh profile should scan only today, got %d days", result.DaysScanned)
	}
	// Both slots have elapsed by 22:00
	if result.EntriesCreated != 2 {
		t.Errorf("expected 2 entries, got %d", result.EntriesCreated)
	}

	record, _, err := store.GetCompletionRecord("default", "2026-08-28")
	if err != nil {
		t.Fatalf("GetCompletionRecord failed: %v", err)
	}
	if record.CompletedCount() != 2 {
		t.Errorf("expected both slots recorded, got %d", record.CompletedCount())
	}
}
