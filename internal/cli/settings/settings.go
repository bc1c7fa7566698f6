package settings

import (
	"fmt"

	"github.com/selahapp/selah/internal/cli"
)

type RemindersCmd struct {
	List bool `help:"List current reminder settings."`

	Enabled *bool `help:"Enable or disable reminders globally."`
}

func (c *RemindersCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.LoadStore()
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetReminderSettings(profile)
	if err != nil {
		return fmt.Errorf("failed to get reminder settings: %w", err)
	}

	if c.List || c.Enabled == nil {
		fmt.Printf("Reminder Settings (profile %q):\n", profile)
		fmt.Printf("  Enabled: %v\n", settings.Enabled)
		fmt.Printf("  Slots:   %d configured\n", len(settings.Slots))
		for _, slot := range settings.Slots {
			state := "on"
			if !slot.Enabled {
				state = "off"
			}
			fmt.Printf("    %s  %-3s  %s\n", slot.FormatTime(), state, slot.Label)
		}
		return nil
	}

	settings.Enabled = *c.Enabled
	if err := ctx.Store.SaveReminderSettings(profile, settings); err != nil {
		return fmt.Errorf("failed to save reminder settings: %w", err)
	}

	if settings.Enabled {
		fmt.Println("✓ Reminders enabled.")
	} else {
		fmt.Println("✓ Reminders disabled. No slots will activate until re-enabled.")
	}
	return nil
}
