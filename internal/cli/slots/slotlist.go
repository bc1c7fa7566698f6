package slots

import (
	"fmt"

	"github.com/selahapp/selah/internal/cli"
)

type SlotListCmd struct{}

func (c *SlotListCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.LoadStore()
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetReminderSettings(profile)
	if err != nil {
		return fmt.Errorf("failed to get reminder settings: %w", err)
	}

	state := "enabled"
	if !settings.Enabled {
		state = "disabled"
	}
	fmt.Printf("Reminders %s for profile %q\n\n", state, profile)

	for _, slot := range settings.Slots {
		status := " "
		if !slot.Enabled {
			status = "off"
		}
		fmt.Printf("%-24s  %s  %3s  %s\n", slot.ID, slot.FormatTime(), status, slot.Label)
	}
	return nil
}
