package profiles

import (
	"fmt"

	"github.com/selahapp/selah/internal/cli"
)

type ProfileUseCmd struct {
	Name string `arg:"" help:"Profile to switch to. Created if it does not exist."`
}

func (c *ProfileUseCmd) Run(ctx *cli.Context) error {
	if c.Name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// SwitchProfile creates the profile, marks it active and runs its
	// catch-up backfill
	if err := ctx.Session.SwitchProfile(c.Name); err != nil {
		return fmt.Errorf("failed to switch profile: %w", err)
	}

	fmt.Printf("✓ Active profile: %s\n", c.Name)
	return nil
}

type ProfileListCmd struct{}

func (c *ProfileListCmd) Run(ctx *cli.Context) error {
	active, err := ctx.LoadStore()
	if err != nil {
		return err
	}

	names, err := ctx.Store.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	for _, name := range names {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
	return nil
}
