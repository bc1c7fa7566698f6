package models

import (
	"fmt"
	"time"

	"github.com/selahapp/selah/internal/constants"
)

// TimeSlot is a configured recurring time-of-day reminder.
type TimeSlot struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Hour    int    `json:"hour"`   // 0-23
	Minute  int    `json:"minute"` // 0-59
	Enabled bool   `json:"enabled"`
}

func (s *TimeSlot) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("slot id cannot be empty")
	}
	if s.Label == "" {
		return fmt.Errorf("slot label cannot be empty")
	}
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("invalid hour %d (expected 0-23)", s.Hour)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("invalid minute %d (expected 0-59)", s.Minute)
	}
	return nil
}

// MinuteOfDay returns the slot's scheduled time as minutes from midnight.
func (s TimeSlot) MinuteOfDay() int {
	return s.Hour*60 + s.Minute
}

// TimeOn returns the slot's scheduled wall-clock time on the given day.
func (s TimeSlot) TimeOn(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.Hour, s.Minute, 0, 0, day.Location())
}

// FormatTime returns the slot time as HH:MM.
func (s TimeSlot) FormatTime() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// ReminderSettings is the per-profile reminder configuration: a global
// switch plus the configured slots, ordered by insertion.
type ReminderSettings struct {
	Enabled bool       `json:"enabled"`
	Slots   []TimeSlot `json:"slots"`
}

// DefaultReminderSettings returns the settings used for fresh profiles and
// whenever stored settings are absent or unreadable.
func DefaultReminderSettings() ReminderSettings {
	return ReminderSettings{
		Enabled: constants.DefaultRemindersEnabled,
		Slots: []TimeSlot{
			{
				ID:      constants.DefaultMorningSlotID,
				Label:   constants.DefaultMorningSlotLabel,
				Hour:    constants.DefaultMorningHour,
				Minute:  constants.DefaultMorningMinute,
				Enabled: true,
			},
			{
				ID:      constants.DefaultEveningSlotID,
				Label:   constants.DefaultEveningSlotLabel,
				Hour:    constants.DefaultEveningHour,
				Minute:  constants.DefaultEveningMinute,
				Enabled: true,
			},
		},
	}
}

func (rs *ReminderSettings) Validate() error {
	seen := make(map[string]bool, len(rs.Slots))
	for i := range rs.Slots {
		if err := rs.Slots[i].Validate(); err != nil {
			return err
		}
		if seen[rs.Slots[i].ID] {
			return fmt.Errorf("duplicate slot id: %s", rs.Slots[i].ID)
		}
		seen[rs.Slots[i].ID] = true
	}
	return nil
}

// SlotByID returns the slot with the given id, if configured.
func (rs *ReminderSettings) SlotByID(id string) (TimeSlot, bool) {
	for _, s := range rs.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// AddSlot appends a slot, rejecting duplicates and invalid slots.
func (rs *ReminderSettings) AddSlot(slot TimeSlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if _, ok := rs.SlotByID(slot.ID); ok {
		return fmt.Errorf("slot already exists: %s", slot.ID)
	}
	rs.Slots = append(rs.Slots, slot)
	return nil
}

// RemoveSlot deletes the slot with the given id. Removing the last
// remaining slot is refused; the call is then a no-op and returns false.
func (rs *ReminderSettings) RemoveSlot(id string) bool {
	if len(rs.Slots) <= 1 {
		return false
	}
	for i, s := range rs.Slots {
		if s.ID == id {
			rs.Slots = append(rs.Slots[:i], rs.Slots[i+1:]...)
			return true
		}
	}
	return false
}

// SetSlotEnabled toggles a single slot. Returns false if the slot is unknown.
func (rs *ReminderSettings) SetSlotEnabled(id string, enabled bool) bool {
	for i := range rs.Slots {
		if rs.Slots[i].ID == id {
			rs.Slots[i].Enabled = enabled
			return true
		}
	}
	return false
}
