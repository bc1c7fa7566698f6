package analysis

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/selahapp/selah/internal/constants"
	"github.com/selahapp/selah/internal/models"
)

// Heuristic is the offline analyzer: deterministic keyword, mood, and
// prayer-request extraction over the transcript text.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

const maxKeywords = 5

var (
	scriptureRefPattern = regexp.MustCompile(`(?:[1-3]\s)?[A-Z][a-z]+\s\d{1,3}:\d{1,3}(?:-\d{1,3})?`)
	sentenceSplitter    = regexp.MustCompile(`[.!?]+\s*`)
	wordPattern         = regexp.MustCompile(`[a-zA-Z']+`)

	stopwords = map[string]bool{
		"about": true, "after": true, "again": true, "because": true,
		"been": true, "before": true, "being": true, "could": true,
		"every": true, "feel": true, "from": true, "have": true,
		"just": true, "like": true, "really": true, "some": true,
		"than": true, "that": true, "their": true, "them": true,
		"then": true, "there": true, "these": true, "they": true,
		"thing": true, "things": true, "this": true, "time": true,
		"today": true, "very": true, "want": true, "were": true,
		"what": true, "when": true, "where": true, "which": true,
		"will": true, "with": true, "would": true, "your": true,
	}

	positiveWords = []string{"grateful", "thankful", "joy", "peace", "blessed", "hope", "love", "glad"}
	negativeWords = []string{"worried", "anxious", "afraid", "tired", "angry", "sad", "struggling", "lost"}

	requestMarkers = []string{"pray for", "praying for", "please help", "i ask", "lord, help", "god, help"}
)

func (h *Heuristic) Analyze(ctx context.Context, transcript string) (models.Analysis, error) {
	text := strings.TrimSpace(transcript)
	if text == "" {
		return Fallback(), nil
	}

	result := models.Analysis{
		Summary:        summarize(text),
		Keywords:       extractKeywords(text),
		Mood:           detectMood(text),
		PrayerRequests: extractRequests(text),
	}
	if ref := scriptureRefPattern.FindString(transcript); ref != "" {
		result.ScriptureRef = ref
	}
	return result, nil
}

func summarize(text string) string {
	sentences := sentenceSplitter.Split(text, 2)
	first := strings.TrimSpace(sentences[0])
	if first == "" {
		return constants.GenericSummary
	}
	if len(first) > 80 {
		first = strings.TrimSpace(first[:77]) + "..."
	}
	return first
}

func extractKeywords(text string) []string {
	counts := make(map[string]int)
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(word) < 4 || stopwords[word] {
			continue
		}
		counts[word]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	// Frequency first, then alphabetical for a stable result
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > maxKeywords {
		words = words[:maxKeywords]
	}
	return words
}

func detectMood(text string) string {
	lower := strings.ToLower(text)
	score := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			score--
		}
	}
	switch {
	case score > 1:
		return "joyful"
	case score == 1:
		return "hopeful"
	case score == 0:
		return "reflective"
	case score == -1:
		return "weary"
	default:
		return "troubled"
	}
}

func extractRequests(text string) []string {
	var requests []string
	for _, sentence := range sentenceSplitter.Split(text, -1) {
		s := strings.TrimSpace(sentence)
		if s == "" {
			continue
		}
		lower := strings.ToLower(s)
		for _, marker := range requestMarkers {
			if strings.Contains(lower, marker) {
				requests = append(requests, s)
				break
			}
		}
	}
	return requests
}
