package models

// Analysis is the structured result of content analysis over a transcript.
// Partial results are valid; missing fields fall back to generic values at
// the point of use.
type Analysis struct {
	Summary        string   `json:"summary"`
	Keywords       []string `json:"keywords,omitempty"`
	Mood           string   `json:"mood,omitempty"`
	PrayerRequests []string `json:"prayer_requests,omitempty"`
	ScriptureRef   string   `json:"scripture_ref,omitempty"`
}
