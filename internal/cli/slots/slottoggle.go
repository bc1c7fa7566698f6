package slots

import (
	"fmt"

	"github.com/selahapp/selah/internal/cli"
)

type SlotEnableCmd struct {
	ID string `arg:"" help:"Slot id."`
}

func (c *SlotEnableCmd) Run(ctx *cli.Context) error {
	return toggleSlot(ctx, c.ID, true)
}

type SlotDisableCmd struct {
	ID string `arg:"" help:"Slot id."`
}

func (c *SlotDisableCmd) Run(ctx *cli.Context) error {
	return toggleSlot(ctx, c.ID, false)
}

func toggleSlot(ctx *cli.Context, id string, enabled bool) error {
	profile, err := ctx.LoadStore()
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetReminderSettings(profile)
	if err != nil {
		return fmt.Errorf("failed to get reminder settings: %w", err)
	}

	if !settings.SetSlotEnabled(id, enabled) {
		return fmt.Errorf("slot not found: %s", id)
	}

	if err := ctx.Store.SaveReminderSettings(profile, settings); err != nil {
		return fmt.Errorf("failed to save reminder settings: %w", err)
	}

	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	fmt.Printf("✓ Slot %s: %s\n", state, id)
	return nil
}
