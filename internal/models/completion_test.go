package models

import (
	"testing"
	"time"
)

func TestCompletionRecord_MarkCompleted(t *testing.T) {
	record := NewCompletionRecord("2026-08-28")
	first := time.Date(2026, 8, 28, 7, 0, 0, 0, time.Local)
	later := time.Date(2026, 8, 28, 7, 0, 45, 0, time.Local)

	if !record.MarkCompleted("morning", first) {
		t.Fatal("first MarkCompleted should report a change")
	}
	if record.MarkCompleted("morning", later) {
		t.Error("second MarkCompleted should be a no-op")
	}

	if !record.IsCompleted("morning") {
		t.Error("morning should be completed")
	}
	if got := record.CompletedAt["morning"]; !got.Equal(first) {
		t.Errorf("completedAt = %v, want original %v", got, first)
	}
	if record.CompletedCount() != 1 {
		t.Errorf("CompletedCount() = %d, want 1", record.CompletedCount())
	}
}

func TestCompletionRecord_IsCompletedOnZeroValue(t *testing.T) {
	var record CompletionRecord
	if record.IsCompleted("morning") {
		t.Error("zero value should report nothing completed")
	}
}

func TestCompletionRecord_Normalize(t *testing.T) {
	t.Run("slot without timestamp gets midnight", func(t *testing.T) {
		record := CompletionRecord{
			Date:           "2026-08-28",
			CompletedSlots: []string{"morning"},
		}
		record.Normalize()

		at, ok := record.CompletedAt["morning"]
		if !ok {
			t.Fatal("expected a timestamp to be synthesized")
		}
		want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
		if !at.Equal(want) {
			t.Errorf("synthesized timestamp %v, want %v", at, want)
		}
	})

	t.Run("timestamp without listed slot is surfaced", func(t *testing.T) {
		record := CompletionRecord{
			Date: "2026-08-28",
			CompletedAt: map[string]time.Time{
				"evening": time.Date(2026, 8, 28, 21, 0, 0, 0, time.Local),
			},
		}
		record.Normalize()

		if len(record.CompletedSlots) != 1 || record.CompletedSlots[0] != "evening" {
			t.Errorf("expected evening listed, got %v", record.CompletedSlots)
		}
	})

	t.Run("consistent record unchanged", func(t *testing.T) {
		at := time.Date(2026, 8, 28, 7, 0, 0, 0, time.Local)
		record := CompletionRecord{
			Date:           "2026-08-28",
			CompletedSlots: []string{"morning"},
			CompletedAt:    map[string]time.Time{"morning": at},
		}
		record.Normalize()

		if len(record.CompletedSlots) != 1 || !record.CompletedAt["morning"].Equal(at) {
			t.Errorf("consistent record was altered: %+v", record)
		}
	})
}
