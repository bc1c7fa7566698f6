package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/selahapp/selah/internal/cli"
	"github.com/selahapp/selah/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing database before initialization."`
	Source string `help:"Source database path or connection string to migrate data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Refuse to delete the source itself
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized selah storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, sourcePath string) error {
	if storage.IsPostgresConfig(sourcePath) && storage.HasEmbeddedCredentials(sourcePath) {
		return fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
	}

	sourceStore := storage.NewProvider(sourcePath)
	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	fmt.Println("  Migrating profiles...")
	names, err := sourceStore.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list source profiles: %w", err)
	}
	for _, name := range names {
		if err := ctx.Store.EnsureProfile(name); err != nil {
			return fmt.Errorf("failed to create profile %s: %w", name, err)
		}
	}
	fmt.Printf("    Migrated %d profiles\n", len(names))

	if active, err := sourceStore.GetActiveProfile(); err == nil && active != "" {
		if err := ctx.Store.SetActiveProfile(active); err != nil {
			return fmt.Errorf("failed to set active profile: %w", err)
		}
	}

	fmt.Println("  Migrating reminder settings...")
	for _, name := range names {
		settings, err := sourceStore.GetReminderSettings(name)
		if err != nil {
			return fmt.Errorf("failed to get settings for profile %s: %w", name, err)
		}
		if err := ctx.Store.SaveReminderSettings(name, settings); err != nil {
			return fmt.Errorf("failed to save settings for profile %s: %w", name, err)
		}
	}

	fmt.Println("  Migrating completion records...")
	migrated := 0
	for _, name := range names {
		records, err := sourceStore.ListCompletionRecords(name)
		if err != nil {
			return fmt.Errorf("failed to list completion records for profile %s: %w", name, err)
		}
		for _, record := range records {
			if err := ctx.Store.SaveCompletionRecord(name, record); err != nil {
				return fmt.Errorf("failed to save completion record %s/%s: %w", name, record.Date, err)
			}
			migrated++
		}
	}
	fmt.Printf("    Migrated %d completion records\n", migrated)

	return nil
}
