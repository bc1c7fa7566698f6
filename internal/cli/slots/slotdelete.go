package slots

import (
	"fmt"

	"github.com/selahapp/selah/internal/cli"
)

type SlotDeleteCmd struct {
	ID string `arg:"" help:"Slot id."`
}

func (c *SlotDeleteCmd) Run(ctx *cli.Context) error {
	profile, err := ctx.LoadStore()
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetReminderSettings(profile)
	if err != nil {
		return fmt.Errorf("failed to get reminder settings: %w", err)
	}

	if _, ok := settings.SlotByID(c.ID); !ok {
		return fmt.Errorf("slot not found: %s", c.ID)
	}

	// The last slot cannot be removed; disable reminders instead
	if !settings.RemoveSlot(c.ID) {
		return fmt.Errorf("cannot delete the last remaining slot (use 'selah reminders --enabled=false' to turn reminders off)")
	}

	if err := ctx.Store.SaveReminderSettings(profile, settings); err != nil {
		return fmt.Errorf("failed to save reminder settings: %w", err)
	}

	fmt.Printf("✓ Slot deleted: %s\n", c.ID)
	return nil
}
