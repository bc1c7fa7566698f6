package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/selahapp/selah/internal/cli"
	"github.com/selahapp/selah/internal/keyring"
	"github.com/selahapp/selah/internal/migration"
	"github.com/selahapp/selah/internal/notifier"
	"github.com/selahapp/selah/internal/storage/sqlite"
	"github.com/selahapp/selah/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: storage reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		dbReachable = true
	}

	// Check 2: schema version (only if storage is reachable)
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
	}

	// Check 3: reminder settings valid
	if dbReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Reminder settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Reminder settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Reminder settings: SKIPPED (storage not reachable)\n")
	}

	// Check 4: completion record integrity
	if dbReachable {
		if err := checkCompletionIntegrity(ctx); err != nil {
			fmt.Printf("❌ Completion records: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Completion records: OK\n")
		}
	} else {
		fmt.Printf("⊘ Completion records: SKIPPED (storage not reachable)\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 6: OS keyring (warning only; the local analyzer needs no key)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable; remote analysis cannot be configured\n")
	}

	// Check 7: tray notifier (warning only)
	if err := checkTrayNotifier(); err != nil {
		fmt.Printf("⚠ Tray notifier: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Tray notifier: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// Postgres validates on connect; the JSON store has no schema
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access migrations: %w", err)
	}
	runner := migration.NewRunner(db, subFS, migration.DialectSQLite)

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'selah init')", currentVersion, latestVersion)
	}

	return nil
}

func checkSettings(ctx *cli.Context) error {
	names, err := ctx.Store.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	for _, name := range names {
		settings, err := ctx.Store.GetReminderSettings(name)
		if err != nil {
			return fmt.Errorf("failed to get settings for profile %s: %w", name, err)
		}
		if err := settings.Validate(); err != nil {
			return fmt.Errorf("invalid settings for profile %s: %w", name, err)
		}
		if len(settings.Slots) == 0 {
			return fmt.Errorf("profile %s has no reminder slots", name)
		}
	}
	return nil
}

func checkCompletionIntegrity(ctx *cli.Context) error {
	names, err := ctx.Store.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	for _, name := range names {
		records, err := ctx.Store.ListCompletionRecords(name)
		if err != nil {
			return fmt.Errorf("failed to list completion records for profile %s: %w", name, err)
		}
		for _, record := range records {
			if record.Date == "" {
				return fmt.Errorf("profile %s has a completion record without a date", name)
			}
			if _, err := time.Parse("2006-01-02", record.Date); err != nil {
				return fmt.Errorf("profile %s has a completion record with invalid date %q", name, record.Date)
			}
			if len(record.CompletedSlots) != len(record.CompletedAt) {
				return fmt.Errorf("profile %s day %s: completed slots and timestamps out of sync", name, record.Date)
			}
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}

func checkTrayNotifier() error {
	dir, err := notifier.GetTrayAppConfigDir()
	if err != nil {
		return fmt.Errorf("failed to locate tray config dir: %w", err)
	}
	_ = dir
	// A real delivery check would notify; just confirm the config dir resolves
	return nil
}
