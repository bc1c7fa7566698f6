package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/models"
)

const activeProfileKey = "active_profile"

func (s *Store) EnsureProfile(name string) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO profiles (name, created_at) VALUES (?, ?)
	`, name, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

func (s *Store) ListProfiles() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM profiles ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return names, nil
}

func (s *Store) GetActiveProfile() (string, error) {
	var name string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, activeProfileKey).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get active profile: %w", err)
	}
	return name, nil
}

func (s *Store) SetActiveProfile(name string) error {
	if err := s.EnsureProfile(name); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO app_state (key, value) VALUES (?, ?)
	`, activeProfileKey, name)
	if err != nil {
		return fmt.Errorf("failed to set active profile: %w", err)
	}
	return nil
}

// GetReminderSettings loads the profile's reminder settings. A missing row
// or an unreadable payload yields the defaults, never an error.
func (s *Store) GetReminderSettings(profile string) (models.ReminderSettings, error) {
	var payload string
	err := s.db.QueryRow(`
		SELECT payload FROM reminder_settings WHERE profile = ?
	`, profile).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.DefaultReminderSettings(), nil
	}
	if err != nil {
		return models.ReminderSettings{}, fmt.Errorf("failed to get reminder settings: %w", err)
	}

	var settings models.ReminderSettings
	if err := json.Unmarshal([]byte(payload), &settings); err != nil {
		logger.Warn("Corrupt reminder settings, falling back to defaults", "profile", profile, "error", err)
		return models.DefaultReminderSettings(), nil
	}
	if err := settings.Validate(); err != nil {
		logger.Warn("Invalid reminder settings, falling back to defaults", "profile", profile, "error", err)
		return models.DefaultReminderSettings(), nil
	}
	return settings, nil
}

func (s *Store) SaveReminderSettings(profile string, settings models.ReminderSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder settings: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO reminder_settings (profile, payload, updated_at)
		VALUES (?, ?, ?)
	`, profile, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save reminder settings: %w", err)
	}
	return nil
}

func (s *Store) GetCompletionRecord(profile, day string) (models.CompletionRecord, bool, error) {
	var payload string
	err := s.db.QueryRow(`
		SELECT payload FROM prayer_completions WHERE profile = ? AND day = ?
	`, profile, day).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.CompletionRecord{}, false, nil
	}
	if err != nil {
		return models.CompletionRecord{}, false, fmt.Errorf("failed to get completion record: %w", err)
	}

	var record models.CompletionRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		logger.Warn("Corrupt completion record, treating day as incomplete", "profile", profile, "day", day, "error", err)
		return models.CompletionRecord{}, false, nil
	}
	record.Normalize()
	return record, true, nil
}

func (s *Store) SaveCompletionRecord(profile string, record models.CompletionRecord) error {
	if record.Date == "" {
		return fmt.Errorf("completion record date cannot be empty")
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal completion record: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO prayer_completions (profile, day, payload, updated_at)
		VALUES (?, ?, ?, ?)
	`, profile, record.Date, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save completion record: %w", err)
	}
	return nil
}

// ListCompletionRecords returns the profile's completion records ordered by
// day. Corrupt payloads are skipped with a warning.
func (s *Store) ListCompletionRecords(profile string) ([]models.CompletionRecord, error) {
	rows, err := s.db.Query(`
		SELECT day, payload FROM prayer_completions WHERE profile = ? ORDER BY day ASC
	`, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to query completion records: %w", err)
	}
	defer rows.Close()

	var records []models.CompletionRecord
	for rows.Next() {
		var day, payload string
		if err := rows.Scan(&day, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan completion record: %w", err)
		}
		var record models.CompletionRecord
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			logger.Warn("Corrupt completion record, skipping", "profile", profile, "day", day, "error", err)
			continue
		}
		record.Normalize()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating completion records: %w", err)
	}
	return records, nil
}
