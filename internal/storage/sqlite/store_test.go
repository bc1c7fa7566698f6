package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/selahapp/selah/internal/constants"
	"github.com/selahapp/selah/internal/models"
)

func newInitializedStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "selah.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_InitSeedsDefaultProfile(t *testing.T) {
	store := newInitializedStore(t)

	active, err := store.GetActiveProfile()
	if err != nil {
		t.Fatalf("GetActiveProfile failed: %v", err)
	}
	if active != constants.DefaultProfile {
		t.Errorf("active profile = %q, want %q", active, constants.DefaultProfile)
	}

	names, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(names) != 1 || names[0] != constants.DefaultProfile {
		t.Errorf("profiles = %v", names)
	}
}

func TestStore_LoadRequiresInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected Load of uninitialized storage to fail")
	}
}

func TestStore_SettingsRoundTrip(t *testing.T) {
	store := newInitializedStore(t)

	// Absent settings yield defaults
	settings, err := store.GetReminderSettings("default")
	if err != nil {
		t.Fatalf("GetReminderSettings failed: %v", err)
	}
	if !settings.Enabled || len(settings.Slots) != 2 {
		t.Errorf("expected defaults, got %+v", settings)
	}

	settings.Enabled = false
	settings.SetSlotEnabled("morning", false)
	if err := store.SaveReminderSettings("default", settings); err != nil {
		t.Fatalf("SaveReminderSettings failed: %v", err)
	}

	got, err := store.GetReminderSettings("default")
	if err != nil {
		t.Fatalf("GetReminderSettings failed: %v", err)
	}
	if got.Enabled {
		t.Error("enabled flag lost in round trip")
	}
	slot, ok := got.SlotByID("morning")
	if !ok || slot.Enabled {
		t.Errorf("morning slot state lost: %+v", slot)
	}
}

func TestStore_CorruptSettingsYieldDefaults(t *testing.T) {
	store := newInitializedStore(t)

	_, err := store.GetDB().Exec(`
		INSERT OR REPLACE INTO reminder_settings (profile, payload, updated_at)
		VALUES (?, ?, ?)
	`, "default", "{not valid json", time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("failed to plant corrupt payload: %v", err)
	}

	settings, err := store.GetReminderSettings("default")
	if err != nil {
		t.Fatalf("corrupt payload must not surface an error: %v", err)
	}
	if !settings.Enabled || len(settings.Slots) != 2 {
		t.Errorf("expected defaults for corrupt payload, got %+v", settings)
	}
}

func TestStore_CompletionRecords(t *testing.T) {
	store := newInitializedStore(t)

	_, existed, err := store.GetCompletionRecord("default", "2026-08-28")
	if err != nil {
		t.Fatalf("GetCompletionRecord failed: %v", err)
	}
	if existed {
		t.Error("expected no record before saving")
	}

	record := models.NewCompletionRecord("2026-08-28")
	record.MarkCompleted("morning", time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC))
	if err := store.SaveCompletionRecord("default", record); err != nil {
		t.Fatalf("SaveCompletionRecord failed: %v", err)
	}

	got, existed, err := store.GetCompletionRecord("default", "2026-08-28")
	if err != nil || !existed {
		t.Fatalf("expected record (existed=%v err=%v)", existed, err)
	}
	if !got.IsCompleted("morning") || got.IsCompleted("evening") {
		t.Errorf("completion state mismatch: %+v", got)
	}

	// Upsert replaces the day's payload
	record.MarkCompleted("evening", time.Date(2026, 8, 28, 21, 0, 0, 0, time.UTC))
	if err := store.SaveCompletionRecord("default", record); err != nil {
		t.Fatalf("SaveCompletionRecord failed: %v", err)
	}
	got, _, err = store.GetCompletionRecord("default", "2026-08-28")
	if err != nil {
		t.Fatalf("GetCompletionRecord failed: %v", err)
	}
	if got.CompletedCount() != 2 {
		t.Errorf("expected 2 completed slots, got %d", got.CompletedCount())
	}
}

func TestStore_CorruptCompletionTreatedAsAbsent(t *testing.T) {
	store := newInitializedStore(t)

	_, err := store.GetDB().Exec(`
		INSERT OR REPLACE INTO prayer_completions (profile, day, payload, updated_at)
		VALUES (?, ?, ?, ?)
	`, "default", "2026-08-28", "garbage", time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("failed to plant corrupt payload: %v", err)
	}

	_, existed, err := store.GetCompletionRecord("default", "2026-08-28")
	if err != nil {
		t.Fatalf("corrupt payload must not surface an error: %v", err)
	}
	if existed {
		t.Error("corrupt record should be treated as absent")
	}
}

func TestStore_ListCompletionRecords(t *testing.T) {
	store := newInitializedStore(t)

	for _, day := range []string{"2026-08-27", "2026-08-25", "2026-08-26"} {
		record := models.NewCompletionRecord(day)
		record.MarkCompleted("morning", time.Date(2026, 8, 25, 7, 0, 0, 0, time.UTC))
		if err := store.SaveCompletionRecord("default", record); err != nil {
			t.Fatalf("SaveCompletionRecord failed: %v", err)
		}
	}

	records, err := store.ListCompletionRecords("default")
	if err != nil {
		t.Fatalf("ListCompletionRecords failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"2026-08-25", "2026-08-26", "2026-08-27"} {
		if records[i].Date != want {
			t.Errorf("position %d: got %s, want %s", i, records[i].Date, want)
		}
	}

	// Per-profile isolation
	other, err := store.ListCompletionRecords("nobody")
	if err != nil {
		t.Fatalf("ListCompletionRecords failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no records for unknown profile, got %d", len(other))
	}
}
