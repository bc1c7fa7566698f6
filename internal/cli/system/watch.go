package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/selahapp/selah/internal/cli"
	"github.com/selahapp/selah/internal/constants"
)

// WatchCmd keeps the reminder engine running in the foreground: the polling
// tick raises slots as their minute arrives and the rollover watcher resets
// state at midnight. Ctrl-C exits.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	fmt.Printf("Watching reminders for profile %q (poll every %s). Ctrl-C to stop.\n",
		engine.Profile(), constants.PollInterval)

	ctx.Session.Start()
	defer ctx.Session.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping.")
	return nil
}
