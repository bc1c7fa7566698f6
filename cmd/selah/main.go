package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/selahapp/selah/internal/analysis"
	"github.com/selahapp/selah/internal/cli"
	"github.com/selahapp/selah/internal/cli/entries"
	"github.com/selahapp/selah/internal/cli/prayer"
	"github.com/selahapp/selah/internal/cli/profiles"
	"github.com/selahapp/selah/internal/cli/settings"
	"github.com/selahapp/selah/internal/cli/slots"
	"github.com/selahapp/selah/internal/cli/system"
	"github.com/selahapp/selah/internal/constants"
	apperrors "github.com/selahapp/selah/internal/errors"
	"github.com/selahapp/selah/internal/journal"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/notifier"
	"github.com/selahapp/selah/internal/scripture"
	"github.com/selahapp/selah/internal/session"
	"github.com/selahapp/selah/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db for SQLite, .json for a single-file store) or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables, .pgpass, or OS keyring instead." type:"string" default:"~/.config/selah/selah.db"`

	Init     system.InitCmd     `cmd:"" help:"Initialize selah storage."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Status   system.StatusCmd   `cmd:"" help:"Show reminder status and today's progress." default:"1"`
	Record   entries.RecordCmd  `cmd:"" help:"Record a journal entry from a transcript."`
	Complete prayer.CompleteCmd `cmd:"" help:"Complete the active prayer slot."`
	Dismiss  prayer.DismissCmd  `cmd:"" help:"Dismiss the active prayer slot."`
	Watch    system.WatchCmd    `cmd:"" help:"Run the reminder engine in the foreground."`
	Backfill system.BackfillCmd `cmd:"" help:"Synthesize entries for missed prayer slots."`
	Entry    struct {
		List   entries.EntryListCmd   `cmd:"" help:"List journal entries." default:"1"`
		Show   entries.EntryShowCmd   `cmd:"" help:"Show a single entry."`
		Delete entries.EntryDeleteCmd `cmd:"" help:"Delete an entry."`
	} `cmd:"" help:"Manage journal entries."`
	Slot struct {
		Add     slots.SlotAddCmd     `cmd:"" help:"Add a reminder slot."`
		Delete  slots.SlotDeleteCmd  `cmd:"" help:"Delete a reminder slot."`
		List    slots.SlotListCmd    `cmd:"" help:"List reminder slots." default:"1"`
		Enable  slots.SlotEnableCmd  `cmd:"" help:"Enable a reminder slot."`
		Disable slots.SlotDisableCmd `cmd:"" help:"Disable a reminder slot."`
	} `cmd:"" help:"Manage reminder slots."`
	Profile struct {
		Use  profiles.ProfileUseCmd  `cmd:"" help:"Switch to a profile (created on first use)."`
		List profiles.ProfileListCmd `cmd:"" help:"List profiles." default:"1"`
	} `cmd:"" help:"Manage profiles."`
	Reminders settings.RemindersCmd `cmd:"" help:"Show or change reminder settings."`
	Keyring   struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store the analysis API key in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Check the stored analysis API key."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Delete the analysis API key from the OS keyring."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check OS keyring availability."`
	} `cmd:"" help:"Manage the analysis API key."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a notification (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("selah"),
		kong.Description("Devotional journaling companion with prayer reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := CLI.Config
	if storage.IsPostgresConfig(config) {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintf(os.Stderr, "❌ Error: PostgreSQL connection strings with embedded credentials are NOT allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use one of these secure alternatives:\n")
			fmt.Fprintf(os.Stderr, "       1. Environment:   export PGPASSWORD=... with a credential-free connection string\n")
			fmt.Fprintf(os.Stderr, "       2. .pgpass file:  Use a connection string without password: \"postgresql://user@host:5432/selah\"\n")
			os.Exit(1)
		}
	} else {
		config = expandPath(config)
	}

	store := storage.NewProvider(config)

	verses := buildVerseLookup()
	sess := session.New(session.Config{
		Store:    store,
		Archive:  journal.NewDiskArchive(archivePath(config)),
		Analyzer: analysis.Default(),
		Verses:   verses,
		Notifier: notifier.New(),
	})

	appCtx := &cli.Context{
		Store:   store,
		Session: sess,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// expandPath resolves a leading ~ against the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// archivePath places the entry archive next to a file-backed store, or under
// the user config dir when storage is remote.
func archivePath(config string) string {
	if !storage.IsPostgresConfig(config) {
		return filepath.Join(filepath.Dir(config), "entries")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "entries")
	}
	return filepath.Join(configDir, constants.AppName, "entries")
}

func buildVerseLookup() scripture.Lookup {
	cfg, err := scripture.LoadConfig()
	if err != nil {
		logger.Warn("Failed to load verse lookup config, scripture text disabled", "error", err)
		return nil
	}
	return scripture.NewClient(cfg)
}
