package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/selahapp/selah/internal/constants"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/models"
)

// jsonStore is the single-file fallback backend. Everything lives in one
// document; writes are last-write-wins over the whole file.
type jsonStore struct {
	Version       int                                           `json:"version"`
	ActiveProfile string                                        `json:"active_profile"`
	Profiles      []string                                      `json:"profiles"`
	Settings      map[string]models.ReminderSettings            `json:"settings"`
	Completions   map[string]map[string]models.CompletionRecord `json:"completions"` // profile -> day -> record
}

type JSONStore struct {
	path  string
	store *jsonStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &jsonStore{
		Version:       1,
		ActiveProfile: constants.DefaultProfile,
		Profiles:      []string{constants.DefaultProfile},
		Settings: map[string]models.ReminderSettings{
			constants.DefaultProfile: models.DefaultReminderSettings(),
		},
		Completions: make(map[string]map[string]models.CompletionRecord),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'selah init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &jsonStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Settings == nil {
		s.store.Settings = make(map[string]models.ReminderSettings)
	}
	if s.store.Completions == nil {
		s.store.Completions = make(map[string]map[string]models.CompletionRecord)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) EnsureProfile(name string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}
	for _, p := range s.store.Profiles {
		if p == name {
			return nil
		}
	}
	s.store.Profiles = append(s.store.Profiles, name)
	return s.save()
}

func (s *JSONStore) ListProfiles() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	names := make([]string, len(s.store.Profiles))
	copy(names, s.store.Profiles)
	sort.Strings(names)
	return names, nil
}

func (s *JSONStore) GetActiveProfile() (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.store.ActiveProfile, nil
}

func (s *JSONStore) SetActiveProfile(name string) error {
	if err := s.EnsureProfile(name); err != nil {
		return err
	}
	s.store.ActiveProfile = name
	return s.save()
}

func (s *JSONStore) GetReminderSettings(profile string) (models.ReminderSettings, error) {
	if s.store == nil {
		return models.ReminderSettings{}, fmt.Errorf("storage not loaded")
	}
	settings, ok := s.store.Settings[profile]
	if !ok {
		return models.DefaultReminderSettings(), nil
	}
	if err := settings.Validate(); err != nil {
		logger.Warn("Invalid reminder settings, falling back to defaults", "profile", profile, "error", err)
		return models.DefaultReminderSettings(), nil
	}
	return settings, nil
}

func (s *JSONStore) SaveReminderSettings(profile string, settings models.ReminderSettings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	s.store.Settings[profile] = settings
	return s.save()
}

func (s *JSONStore) GetCompletionRecord(profile, day string) (models.CompletionRecord, bool, error) {
	if s.store == nil {
		return models.CompletionRecord{}, false, fmt.Errorf("storage not loaded")
	}
	days, ok := s.store.Completions[profile]
	if !ok {
		return models.CompletionRecord{}, false, nil
	}
	record, ok := days[day]
	if !ok {
		return models.CompletionRecord{}, false, nil
	}
	record.Normalize()
	return record, true, nil
}

func (s *JSONStore) SaveCompletionRecord(profile string, record models.CompletionRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if record.Date == "" {
		return fmt.Errorf("completion record date cannot be empty")
	}
	if _, ok := s.store.Completions[profile]; !ok {
		s.store.Completions[profile] = make(map[string]models.CompletionRecord)
	}
	s.store.Completions[profile][record.Date] = record
	return s.save()
}

// ListCompletionRecords returns the profile's completion records ordered by
// day.
func (s *JSONStore) ListCompletionRecords(profile string) ([]models.CompletionRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	days, ok := s.store.Completions[profile]
	if !ok {
		return nil, nil
	}
	records := make([]models.CompletionRecord, 0, len(days))
	for _, record := range days {
		record.Normalize()
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date < records[j].Date })
	return records, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
