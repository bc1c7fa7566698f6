package slots

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/selahapp/selah/internal/cli"
	"github.com/selahapp/selah/internal/models"
	"github.com/selahapp/selah/internal/utils"
)

type SlotAddCmd struct {
	Label string `arg:"" help:"Slot label (e.g. \"Midday Prayer\")."`
	Time  string `help:"Scheduled time (HH:MM)." required:""`
	ID    string `help:"Slot id. Generated when omitted."`
}

func (c *SlotAddCmd) Run(ctx *cli.Context) error {
	hour, minute, err := utils.ParseTime(c.Time)
	if err != nil {
		return err
	}

	profile, err := ctx.LoadStore()
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetReminderSettings(profile)
	if err != nil {
		return fmt.Errorf("failed to get reminder settings: %w", err)
	}

	id := strings.TrimSpace(c.ID)
	if id == "" {
		id = uuid.New().String()
	}

	slot := models.TimeSlot{
		ID:      id,
		Label:   c.Label,
		Hour:    hour,
		Minute:  minute,
		Enabled: true,
	}
	if err := settings.AddSlot(slot); err != nil {
		return err
	}

	if err := ctx.Store.SaveReminderSettings(profile, settings); err != nil {
		return fmt.Errorf("failed to save reminder settings: %w", err)
	}

	fmt.Printf("✓ Slot added: %s at %s [%s]\n", slot.Label, slot.FormatTime(), slot.ID)
	return nil
}
