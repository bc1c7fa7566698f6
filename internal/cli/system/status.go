package system

import (
	"fmt"
	"time"

	"github.com/selahapp/selah/internal/cli"
	"github.com/selahapp/selah/internal/utils"
)

type StatusCmd struct {
	History int `help:"Show completion history for the last N days." default:"0"`
}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	now := time.Now()
	if err := engine.CheckReminders(now); err != nil {
		return err
	}

	profile := engine.Profile()
	settings, err := ctx.Store.GetReminderSettings(profile)
	if err != nil {
		return fmt.Errorf("failed to get reminder settings: %w", err)
	}

	fmt.Printf("Profile:   %s\n", profile)
	fmt.Printf("Reminders: %v (%d slots)\n", settings.Enabled, len(settings.Slots))

	if active := engine.ActiveSlotID(); active != "" {
		if slot, ok := settings.SlotByID(active); ok {
			fmt.Printf("Active:    %s (%s) - complete or dismiss it\n", slot.Label, slot.FormatTime())
		} else {
			fmt.Printf("Active:    %s\n", active)
		}
	} else {
		fmt.Println("Active:    none")
	}

	completed, total := engine.TodayProgress()
	fmt.Printf("Today:     %d/%d slots completed\n", completed, total)
	fmt.Printf("Entries:   %d\n", ctx.Entries().Len())

	if c.History > 0 {
		records, err := ctx.Store.ListCompletionRecords(profile)
		if err != nil {
			return fmt.Errorf("failed to list completion records: %w", err)
		}
		cutoff := utils.Today(now.AddDate(0, 0, -c.History))

		fmt.Printf("\nLast %d days:\n", c.History)
		for _, record := range records {
			if record.Date < cutoff {
				continue
			}
			fmt.Printf("  %s  %d slot(s)\n", record.Date, record.CompletedCount())
		}
	}

	return nil
}
