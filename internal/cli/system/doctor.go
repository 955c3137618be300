package system

import (
	"fmt"
	"time"

	"github.com/kimurataturyu-sys/workout-log/internal/cli"
	"github.com/kimurataturyu-sys/workout-log/internal/constants"
	"github.com/kimurataturyu-sys/workout-log/internal/storage"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsStore checks are skipped when the store cannot be loaded
	needsStore bool
	// warnOnly failures do not fail the run
	warnOnly bool
	run      func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Store reachable", run: checkStoreReachable},
	{name: "Schema version", needsStore: true, run: checkSchemaVersion},
	{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
	{name: "Data validation", needsStore: true, run: checkValidation},
	{name: "Clock/timezone", run: func(*cli.Context) error { return checkClockTimezone() }},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	storeReachable := true

	for _, c := range checks {
		if c.needsStore && !storeReachable {
			ctx.Printf("⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.name == "Store reachable" {
				storeReachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
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
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON store has no schema
		return nil
	}

	current, latest, err := sqliteStore.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("schema version %d is behind latest %d, run '%s init' to migrate", current, latest, constants.AppName)
	}
	if current > latest {
		return fmt.Errorf("schema version %d is newer than this binary supports (%d)", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	backups, err := ctx.BackupManager().List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run '%s backup create'", constants.AppName)
	}
	age := ctx.Now().Sub(backups[0].Timestamp)
	if age > 7*24*time.Hour {
		return fmt.Errorf("latest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	result := ctx.Open().Validate()
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found, run '%s validate' for details", len(result.Conflicts), constants.AppName)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if _, err := time.LoadLocation("Local"); err != nil {
		return fmt.Errorf("failed to load local timezone: %w", err)
	}
	return nil
}
