package entries

import (
	"fmt"

	"github.com/selahapp/selah/internal/cli"
)

type EntryDeleteCmd struct {
	ID string `arg:"" help:"Entry id (or unique prefix)."`
}

func (c *EntryDeleteCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadSession(); err != nil {
		return err
	}

	entry, err := cli.FindEntryByPrefix(ctx.Entries().Entries(), c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Entries().Delete(entry.ID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	fmt.Printf("✓ Entry deleted: %s\n", cli.ShortID(entry.ID))
	return nil
}
