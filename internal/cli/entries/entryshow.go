package entries

import (
	"fmt"
	"strings"

	"github.com/selahapp/selah/internal/cli"
)

type EntryShowCmd struct {
	ID string `arg:"" help:"Entry id (or unique prefix)."`
}

func (c *EntryShowCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadSession(); err != nil {
		return err
	}

	entry, err := cli.FindEntryByPrefix(ctx.Entries().Entries(), c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("ID:        %s\n", entry.ID)
	fmt.Printf("Timestamp: %s\n", entry.Timestamp.Format("2006-01-02 15:04"))
	fmt.Printf("Mood:      %s", cli.FormatMoodLevel(entry.MoodLevel))
	if entry.Mood != "" {
		fmt.Printf(" (%s)", entry.Mood)
	}
	fmt.Println()
	if entry.IsPrayerEntry {
		fmt.Printf("Slot:      %s\n", entry.PrayerSlotID)
	}
	if entry.Summary != "" {
		fmt.Printf("Summary:   %s\n", entry.Summary)
	}
	if len(entry.Keywords) > 0 {
		fmt.Printf("Keywords:  %s\n", strings.Join(entry.Keywords, ", "))
	}
	if entry.Scripture != nil {
		fmt.Printf("Scripture: %s", entry.Scripture.Reference)
		if entry.Scripture.Translation != "" {
			fmt.Printf(" (%s)", entry.Scripture.Translation)
		}
		fmt.Println()
		if entry.Scripture.Text != "" {
			fmt.Printf("           %s\n", cli.Excerpt(entry.Scripture.Text, 200))
		}
	}
	if len(entry.PrayerRequests) > 0 {
		fmt.Println("Prayer requests:")
		for _, req := range entry.PrayerRequests {
			fmt.Printf("  - %s\n", req)
		}
	}
	fmt.Println()
	if entry.Transcript != "" {
		fmt.Println(entry.Transcript)
	} else if entry.IsPrayerEntry {
		fmt.Println("(placeholder, awaiting recording)")
	}
	return nil
}
