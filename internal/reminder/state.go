package reminder

import (
	"time"

	"github.com/selahapp/selah/internal/constants"
	"github.com/selahapp/selah/internal/models"
	"github.com/selahapp/selah/internal/utils"
)

// State is the engine's per-session memory. The zero value is IDLE with no
// history.
type State struct {
	ActiveSlotID    string
	DismissedSlotID string
	LastCheckedDate string
}

// EffectKind enumerates the side effects a transition can request.
type EffectKind int

const (
	// EffectCreatePlaceholder asks for an empty prayer entry at Effect.At
	EffectCreatePlaceholder EffectKind = iota
	// EffectMarkCompleted asks for the slot to be recorded as satisfied at Effect.At
	EffectMarkCompleted
	// EffectNotify asks for a best-effort desktop notification
	EffectNotify
)

// Effect is a side effect requested by Evaluate. The engine applies effects;
// the transition itself stays pure.
type Effect struct {
	Kind EffectKind
	Slot models.TimeSlot
	At   time.Time
}

// Evaluate runs one polling tick of the reminder state machine. It is a pure
// function of its inputs and returns the next state plus the effects the
// caller must apply.
func Evaluate(state State, now time.Time, settings models.ReminderSettings, record models.CompletionRecord) (State, []Effect) {
	today := now.Format(constants.DateFormat)

	// A new day makes slots eligible again
	if state.LastCheckedDate != "" && state.LastCheckedDate != today {
		state.ActiveSlotID = ""
		state.DismissedSlotID = ""
	}
	state.LastCheckedDate = today

	// Global kill switch forces IDLE
	if !settings.Enabled {
		state.ActiveSlotID = ""
		return state, nil
	}

	nowMinute := utils.MinuteOfDay(now)

	// Lapse: the clock moved past the active slot's minute. Clears the
	// dismissed memory as well.
	if state.ActiveSlotID != "" {
		slot, ok := settings.SlotByID(state.ActiveSlotID)
		if !ok || slot.MinuteOfDay() < nowMinute {
			state.ActiveSlotID = ""
			state.DismissedSlotID = ""
		}
	}

	// Dismissed memory expires the same way once its minute has passed
	if state.DismissedSlotID != "" {
		slot, ok := settings.SlotByID(state.DismissedSlotID)
		if !ok || slot.MinuteOfDay() < nowMinute {
			state.DismissedSlotID = ""
		}
	}

	if state.ActiveSlotID != "" {
		return state, nil
	}

	// Exact-minute match against enabled, uncompleted, undismissed slots.
	// A tick missed at the trigger minute is not replayed here; the
	// backfill pass covers elapsed slots.
	for _, slot := range settings.Slots {
		if !slot.Enabled {
			continue
		}
		if slot.Hour != now.Hour() || slot.Minute != now.Minute() {
			continue
		}
		if record.IsCompleted(slot.ID) {
			continue
		}
		if slot.ID == state.DismissedSlotID {
			continue
		}

		slotTime := slot.TimeOn(now)
		state.ActiveSlotID = slot.ID
		return state, []Effect{
			{Kind: EffectCreatePlaceholder, Slot: slot, At: slotTime},
			{Kind: EffectMarkCompleted, Slot: slot, At: slotTime},
			{Kind: EffectNotify, Slot: slot, At: slotTime},
		}
	}

	return state, nil
}
