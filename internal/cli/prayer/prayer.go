package prayer

import (
	"fmt"
	"time"

	"github.com/selahapp/selah/internal/cli"
)

// CompleteCmd marks the currently active prayer slot as done. Outside the
// activation minute there is nothing to complete; the backfill pass records
// lapsed slots on its own.
type CompleteCmd struct{}

func (c *CompleteCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	if err := engine.CheckReminders(time.Now()); err != nil {
		return err
	}

	active := engine.ActiveSlotID()
	if active == "" {
		fmt.Println("No prayer slot is active right now.")
		return nil
	}

	if err := engine.CompleteActiveSlot(); err != nil {
		return fmt.Errorf("failed to complete slot: %w", err)
	}

	completed, total := engine.TodayProgress()
	fmt.Printf("✓ Slot completed: %s (%d/%d today)\n", active, completed, total)
	return nil
}

// DismissCmd drops the currently active reminder without filling it.
type DismissCmd struct{}

func (c *DismissCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	if err := engine.CheckReminders(time.Now()); err != nil {
		return err
	}

	active := engine.ActiveSlotID()
	if active == "" {
		fmt.Println("No prayer slot is active right now.")
		return nil
	}

	engine.DismissActiveSlot()
	fmt.Printf("✓ Slot dismissed: %s\n", active)
	return nil
}
