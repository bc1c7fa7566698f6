package entries

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/selahapp/selah/internal/cli"
)

type RecordCmd struct {
	Transcript string `arg:"" optional:"" help:"Transcript text. Read from stdin when omitted."`
}

func (c *RecordCmd) Run(ctx *cli.Context) error {
	engine, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	transcript := strings.TrimSpace(c.Transcript)
	if transcript == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read transcript from stdin: %w", err)
		}
		transcript = strings.TrimSpace(string(data))
	}
	if transcript == "" {
		return fmt.Errorf("transcript cannot be empty")
	}

	// Evaluate the current minute first so a slot due right now can claim
	// this recording
	if err := engine.CheckReminders(time.Now()); err != nil {
		return err
	}

	entry, err := engine.SubmitRecording(context.Background(), transcript)
	if err != nil {
		return fmt.Errorf("failed to record entry: %w", err)
	}

	if entry.IsPrayerEntry {
		fmt.Printf("✓ Prayer entry recorded for slot %s [%s]\n", entry.PrayerSlotID, cli.ShortID(entry.ID))
	} else {
		fmt.Printf("✓ Journal entry recorded [%s]\n", cli.ShortID(entry.ID))
	}
	fmt.Printf("  Summary: %s\n", entry.Summary)
	if len(entry.Keywords) > 0 {
		fmt.Printf("  Keywords: %s\n", strings.Join(entry.Keywords, ", "))
	}
	if entry.Scripture != nil {
		fmt.Printf("  Scripture: %s\n", entry.Scripture.Reference)
	}
	if len(entry.PrayerRequests) > 0 {
		fmt.Printf("  Prayer requests: %d\n", len(entry.PrayerRequests))
	}

	return nil
}
