package entries

import (
	"fmt"
	"time"

	"github.com/selahapp/selah/internal/cli"
	"github.com/selahapp/selah/internal/constants"
	"github.com/selahapp/selah/internal/utils"
)

type EntryListCmd struct {
	Day     string `help:"Show entries for a single day (YYYY-MM-DD)."`
	Prayer  bool   `help:"Show only prayer entries."`
	Pending bool   `help:"Show only unfilled prayer placeholders."`
}

func (c *EntryListCmd) Validate() error {
	if c.Day != "" {
		if _, err := utils.ParseDate(c.Day, time.Local); err != nil {
			return err
		}
	}
	return nil
}

func (c *EntryListCmd) Run(ctx *cli.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if _, err := ctx.LoadSession(); err != nil {
		return err
	}

	entries := ctx.Entries().Entries()
	shown := 0
	for _, e := range entries {
		if c.Day != "" && e.Day() != c.Day {
			continue
		}
		if c.Prayer && !e.IsPrayerEntry {
			continue
		}
		if c.Pending && !e.IsPlaceholder() {
			continue
		}

		kind := "journal"
		if e.IsPlaceholder() {
			kind = "pending"
		} else if e.IsPrayerEntry {
			kind = "prayer "
		}

		text := e.Summary
		if text == "" {
			text = e.Transcript
		}
		if text == "" {
			text = "(awaiting recording)"
		}

		fmt.Printf("%s  %s  %s  %s  %s\n",
			cli.ShortID(e.ID),
			e.Timestamp.Format(constants.DateFormat+" "+constants.TimeFormat),
			kind,
			cli.FormatMoodLevel(e.MoodLevel),
			cli.Excerpt(text, 60))
		shown++
	}

	if shown == 0 {
		fmt.Println("No entries found.")
	}
	return nil
}
