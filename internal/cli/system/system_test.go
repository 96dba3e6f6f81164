package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/motivation"
	"github.com/julianstephens/habitflow/internal/storage/sqlite"
)

func setupTestContext(t *testing.T) (*cli.Context, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.New(path)
	t.Cleanup(func() { store.Close() })

	return &cli.Context{
		Store:     store,
		Motivator: motivation.NewMotivator(nil),
		User:      "alex",
	}, path
}

func TestInitCreatesDatabase(t *testing.T) {
	ctx, path := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected database file to exist: %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
}

func TestInitForceResets(t *testing.T) {
	ctx, path := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	// Seed some data that the reset should wipe
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	user, err := ctx.Store.EnsureUser("alex")
	if err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}

	force := &InitCmd{Force: true}
	if err := force.Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}

	fresh := sqlite.New(path)
	if err := fresh.Load(); err != nil {
		t.Fatalf("load after reset failed: %v", err)
	}
	defer fresh.Close()
	if _, err := fresh.GetUserByName(user.Name); err == nil {
		t.Error("expected user to be gone after forced reset")
	}
}

func TestDoctorOnHealthyDatabase(t *testing.T) {
	ctx, _ := setupTestContext(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	doctor := &DoctorCmd{}
	if err := doctor.Run(ctx); err != nil {
		t.Errorf("doctor failed on a healthy database: %v", err)
	}
}

func TestDoctorOnMissingDatabase(t *testing.T) {
	ctx, _ := setupTestContext(t)

	doctor := &DoctorCmd{}
	if err := doctor.Run(ctx); err == nil {
		t.Error("expected doctor to fail when storage is not initialized")
	}
}

func TestReminderLockDir(t *testing.T) {
	dir, err := reminderLockDir("/home/alex/.config/habitflow/habitflow.db")
	if err != nil {
		t.Fatalf("reminderLockDir failed: %v", err)
	}
	if dir != "/home/alex/.config/habitflow" {
		t.Errorf("expected database directory, got %s", dir)
	}

	dir, err = reminderLockDir("postgres://localhost:5432/habitflow")
	if err != nil {
		t.Fatalf("reminderLockDir failed for connection string: %v", err)
	}
	if dir == "" || dir == "postgres:" {
		t.Errorf("expected a config directory for connection strings, got %s", dir)
	}
}
