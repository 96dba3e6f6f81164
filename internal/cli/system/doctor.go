package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/keyring"
	"github.com/julianstephens/habitflow/internal/migration"
	"github.com/julianstephens/habitflow/internal/storage/sqlite"
	"github.com/julianstephens/habitflow/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkCheckinIntegrity(ctx); err != nil {
			fmt.Printf("❌ Check-in integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Check-in integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Check-in integrity: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// API key is optional; missing just means canned quotes
	if err := checkAPIKey(); err != nil {
		fmt.Printf("⚠ OpenAI API key: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ OpenAI API key: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
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
		// Postgres validates its version on load
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
	return migration.NewRunner(db, subFS).ValidateVersion()
}

func checkCheckinIntegrity(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	// Orphaned check-ins referencing non-existent habits
	var orphanedCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM checkins c
		LEFT JOIN habits h ON c.habit_id = h.id
		WHERE h.id IS NULL
	`).Scan(&orphanedCount)
	if err != nil {
		return fmt.Errorf("failed to check orphaned check-ins: %w", err)
	}
	if orphanedCount > 0 {
		return fmt.Errorf("found %d orphaned check-ins (referencing non-existent habits)", orphanedCount)
	}

	// The UNIQUE(habit_id, day) constraint should make this impossible
	var duplicateCount int
	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM (
			SELECT habit_id, day, COUNT(*) as cnt
			FROM checkins
			GROUP BY habit_id, day
			HAVING cnt > 1
		)
	`).Scan(&duplicateCount)
	if err != nil {
		return fmt.Errorf("failed to check duplicate check-ins: %w", err)
	}
	if duplicateCount > 0 {
		return fmt.Errorf("found %d habit+day combinations with duplicate check-ins", duplicateCount)
	}

	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var invalidCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM checkins
		WHERE day NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check check-in dates: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d check-ins with invalid date format", invalidCount)
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkAPIKey() error {
	if os.Getenv(constants.EnvAPIKey) != "" {
		return nil
	}
	if _, err := keyring.GetAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("no API key stored - motivational messages will use canned quotes (set one with 'habitflow config set-key')")
		}
		return fmt.Errorf("keyring unavailable: %v", err)
	}
	return nil
}
