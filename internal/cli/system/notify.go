package system

import (
	"fmt"

	"github.com/selahapp/selah/internal/cli"
	"github.com/selahapp/selah/internal/notifier"
)

// NotifyCmd exercises the tray notification pipeline end to end.
type NotifyCmd struct {
	Message string `arg:"" optional:"" help:"Notification text." default:"Test notification from selah"`
	DryRun  bool   `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if c.DryRun {
		fmt.Println("[DryRun] " + c.Message)
		return nil
	}

	n := notifier.New()
	if err := n.Notify(c.Message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	fmt.Println("✓ Notification sent")
	return nil
}
