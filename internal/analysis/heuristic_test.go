package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/selahapp/selah/internal/constants"
)

func TestHeuristic_Summary(t *testing.T) {
	h := NewHeuristic()

	t.Run("first sentence", func(t *testing.T) {
		result, err := h.Analyze(context.Background(), "Grateful for a quiet morning. The rest of the day was busy.")
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if result.Summary != "Grateful for a quiet morning" {
			t.Errorf("Summary = %q", result.Summary)
		}
	})

	t.Run("long sentence truncated", func(t *testing.T) {
		long := strings.Repeat("word ", 30)
		result, err := h.Analyze(context.Background(), long)
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if len(result.Summary) > 80 {
			t.Errorf("summary too long: %d chars", len(result.Summary))
		}
		if !strings.HasSuffix(result.Summary, "...") {
			t.Errorf("truncated summary should end with ellipsis: %q", result.Summary)
		}
	})

	t.Run("empty transcript falls back", func(t *testing.T) {
		result, err := h.Analyze(context.Background(), "   ")
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		if result.Summary != constants.GenericSummary {
			t.Errorf("Summary = %q, want generic", result.Summary)
		}
	})
}

func TestHeuristic_Keywords(t *testing.T) {
	h := NewHeuristic()
	result, err := h.Analyze(context.Background(),
		"Morning prayer about patience. Patience with the kids, patience at work.")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(result.Keywords) == 0 || result.Keywords[0] != "patience" {
		t.Errorf("most frequent word should lead, got %v", result.Keywords)
	}
	if len(result.Keywords) > 5 {
		t.Errorf("at most 5 keywords, got %d", len(result.Keywords))
	}
	for _, kw := range result.Keywords {
		if len(kw) < 4 {
			t.Errorf("short word leaked into keywords: %q", kw)
		}
	}
}

func TestHeuristic_Mood(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{"strongly positive", "Grateful and blessed, full of joy today.", "joyful"},
		{"mildly positive", "Feeling hope about the new job.", "hopeful"},
		{"neutral", "Went to the store and came back.", "reflective"},
		{"mildly negative", "Tired after a long week.", "weary"},
		{"strongly negative", "Worried and anxious and so tired.", "troubled"},
	}

	h := NewHeuristic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.Analyze(context.Background(), tt.transcript)
			if err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}
			if result.Mood != tt.want {
				t.Errorf("Mood = %q, want %q", result.Mood, tt.want)
			}
		})
	}
}

func TestHeuristic_PrayerRequests(t *testing.T) {
	h := NewHeuristic()
	result, err := h.Analyze(context.Background(),
		"Thankful for the weekend. Please help my sister through surgery. Praying for rain this season.")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(result.PrayerRequests) != 2 {
		t.Fatalf("expected 2 requests, got %v", result.PrayerRequests)
	}
	if !strings.Contains(result.PrayerRequests[0], "sister") {
		t.Errorf("first request = %q", result.PrayerRequests[0])
	}
}

func TestHeuristic_ScriptureRef(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{"simple reference", "Read Psalm 23:1 this morning.", "Psalm 23:1"},
		{"numbered book", "Thinking about 1 John 4:19 all day.", "1 John 4:19"},
		{"verse range", "We studied Romans 8:28-30 tonight.", "Romans 8:28-30"},
		{"no reference", "Just an ordinary day.", ""},
	}

	h := NewHeuristic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.Analyze(context.Background(), tt.transcript)
			if err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}
			if result.ScriptureRef != tt.want {
				t.Errorf("ScriptureRef = %q, want %q", result.ScriptureRef, tt.want)
			}
		})
	}
}
