package system

import (
	"fmt"

	"github.com/selahapp/selah/internal/cli"
)

// BackfillCmd re-runs the catch-up pass explicitly. LoadSession already
// backfills on profile load, so this mostly reports that nothing was
// missing.
type BackfillCmd struct{}

func (c *BackfillCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	result, err := engine.RunBackfill()
	if err != nil {
		return fmt.Errorf("backfill failed: %w", err)
	}

	fmt.Printf("Scanned %d day(s): %d entries created, %d slots recorded.\n",
		result.DaysScanned, result.EntriesCreated, result.SlotsBackfilled)
	return nil
}
