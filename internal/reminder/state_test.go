package reminder

import (
	"testing"
	"time"

	"github.com/selahapp/selah/internal/models"
)

func testSettings() models.ReminderSettings {
	return models.ReminderSettings{
		Enabled: true,
		Slots: []models.TimeSlot{
			{ID: "morning", Label: "Morning Prayer", Hour: 7, Minute: 0, Enabled: true},
			{ID: "evening", Label: "Evening Prayer", Hour: 21, Minute: 0, Enabled: true},
		},
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 28, hour, minute, 30, 0, time.Local)
}

func TestEvaluate_ActivatesOnExactMinute(t *testing.T) {
	state, effects := Evaluate(State{}, at(7, 0), testSettings(), models.NewCompletionRecord("2026-08-28"))

	if state.ActiveSlotID != "morning" {
		t.Fatalf("expected morning slot active, got %q", state.ActiveSlotID)
	}
	if len(effects) != 3 {
		t.Fatalf("expected 3 effects, got %d", len(effects))
	}

	kinds := map[EffectKind]bool{}
	for _, eff := range effects {
		kinds[eff.Kind] = true
		if eff.Slot.ID != "morning" {
			t.Errorf("effect %v targets slot %q, want morning", eff.Kind, eff.Slot.ID)
		}
		want := time.Date(2026, 8, 28, 7, 0, 0, 0, time.Local)
		if !eff.At.Equal(want) {
			t.Errorf("effect %v at %v, want slot time %v", eff.Kind, eff.At, want)
		}
	}
	for _, kind := range []EffectKind{EffectCreatePlaceholder, EffectMarkCompleted, EffectNotify} {
		if !kinds[kind] {
			t.Errorf("missing effect kind %v", kind)
		}
	}
}

func TestEvaluate_NoActivation(t *testing.T) {
	completed := models.NewCompletionRecord("2026-08-28")
	completed.MarkCompleted("morning", at(7, 0))

	disabledSlot := testSettings()
	disabledSlot.SetSlotEnabled("morning", false)

	disabledGlobal := testSettings()
	disabledGlobal.Enabled = false

	tests := []struct {
		name     string
		state    State
		now      time.Time
		settings models.ReminderSettings
		record   models.CompletionRecord
	}{
		{
			name:     "minute does not match",
			now:      at(7, 1),
			settings: testSettings(),
			record:   models.NewCompletionRecord("2026-08-28"),
		},
		{
			name:     "slot already completed today",
			now:      at(7, 0),
			settings: testSettings(),
			record:   completed,
		},
		{
			name:     "slot disabled",
			now:      at(7, 0),
			settings: disabledSlot,
			record:   models.NewCompletionRecord("2026-08-28"),
		},
		{
			name:     "reminders globally disabled",
			now:      at(7, 0),
			settings: disabledGlobal,
			record:   models.NewCompletionRecord("2026-08-28"),
		},
		{
			name:     "slot dismissed this minute",
			state:    State{DismissedSlotID: "morning", LastCheckedDate: "2026-08-28"},
			now:      at(7, 0),
			settings: testSettings(),
			record:   models.NewCompletionRecord("2026-08-28"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, effects := Evaluate(tt.state, tt.now, tt.settings, tt.record)
			if state.ActiveSlotID != "" {
				t.Errorf("expected no active slot, got %q", state.ActiveSlotID)
			}
			if len(effects) != 0 {
				t.Errorf("expected no effects, got %d", len(effects))
			}
		})
	}
}

func TestEvaluate_ActivePersistsWithinMinute(t *testing.T) {
	state := State{ActiveSlotID: "morning", LastCheckedDate: "2026-08-28"}
	next, effects := Evaluate(state, at(7, 0), testSettings(), models.NewCompletionRecord("2026-08-28"))

	if next.ActiveSlotID != "morning" {
		t.Fatalf("active slot should persist within its minute, got %q", next.ActiveSlotID)
	}
	if len(effects) != 0 {
		t.Fatalf("re-evaluating an active slot must not repeat effects, got %d", len(effects))
	}
}

func TestEvaluate_LapseClearsActiveAndDismissed(t *testing.T) {
	state := State{ActiveSlotID: "morning", DismissedSlotID: "morning", LastCheckedDate: "2026-08-28"}
	next, effects := Evaluate(state, at(7, 1), testSettings(), models.NewCompletionRecord("2026-08-28"))

	if next.ActiveSlotID != "" {
		t.Errorf("lapsed slot should clear, got active %q", next.ActiveSlotID)
	}
	if next.DismissedSlotID != "" {
		t.Errorf("lapse should clear dismissed memory, got %q", next.DismissedSlotID)
	}
	if len(effects) != 0 {
		t.Errorf("lapse must not emit effects, got %d", len(effects))
	}
}

func TestEvaluate_UnknownActiveSlotLapses(t *testing.T) {
	// The active slot was deleted from settings mid-activation
	state := State{ActiveSlotID: "gone", LastCheckedDate: "2026-08-28"}
	next, _ := Evaluate(state, at(7, 0), testSettings(), models.NewCompletionRecord("2026-08-28"))

	if next.ActiveSlotID != "morning" {
		t.Fatalf("expected morning to activate after unknown slot cleared, got %q", next.ActiveSlotID)
	}
}

func TestEvaluate_DayRolloverClearsState(t *testing.T) {
	state := State{ActiveSlotID: "evening", DismissedSlotID: "morning", LastCheckedDate: "2026-08-27"}
	next, _ := Evaluate(state, at(0, 5), testSettings(), models.NewCompletionRecord("2026-08-28"))

	if next.ActiveSlotID != "" || next.DismissedSlotID != "" {
		t.Errorf("rollover should clear state, got active=%q dismissed=%q",
			next.ActiveSlotID, next.DismissedSlotID)
	}
	if next.LastCheckedDate != "2026-08-28" {
		t.Errorf("expected last checked date to advance, got %q", next.LastCheckedDate)
	}
}

func TestEvaluate_GlobalDisableForcesIdle(t *testing.T) {
	settings := testSettings()
	settings.Enabled = false

	state := State{ActiveSlotID: "morning", LastCheckedDate: "2026-08-28"}
	next, effects := Evaluate(state, at(7, 0), settings, models.NewCompletionRecord("2026-08-28"))

	if next.ActiveSlotID != "" {
		t.Errorf("disable should force idle, got %q", next.ActiveSlotID)
	}
	if len(effects) != 0 {
		t.Errorf("disable must not emit effects, got %d", len(effects))
	}
}

func TestEvaluate_MissedMinuteNotReplayed(t *testing.T) {
	// The poll that would have landed on 07:00 never ran; a later tick must
	// not raise the slot retroactively
	next, effects := Evaluate(State{}, at(7, 3), testSettings(), models.NewCompletionRecord("2026-08-28"))

	if next.ActiveSlotID != "" {
		t.Errorf("expected no retroactive activation, got %q", next.ActiveSlotID)
	}
	if len(effects) != 0 {
		t.Errorf("expected no effects, got %d", len(effects))
	}
}

func TestEvaluate_DismissedMemoryExpiresAfterMinute(t *testing.T) {
	state := State{DismissedSlotID: "morning", LastCheckedDate: "2026-08-28"}
	next, _ := Evaluate(state, at(7, 1), testSettings(), models.NewCompletionRecord("2026-08-28"))

	if next.DismissedSlotID != "" {
		t.Errorf("dismissed memory should expire once the minute passes, got %q", next.DismissedSlotID)
	}
}
