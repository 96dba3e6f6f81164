package settings

import (
	"path/filepath"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/motivation"
	"github.com/julianstephens/habitflow/internal/storage/sqlite"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()

	store := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return &cli.Context{
		Store:     store,
		Motivator: motivation.NewMotivator(nil),
	}
}

func TestSetReminderTime(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SetCmd{Key: "reminder-time", Value: "21:30"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.ReminderTime != "21:30" {
		t.Errorf("expected reminder time 21:30, got %s", settings.ReminderTime)
	}
}

func TestSetReminderTimeInvalid(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SetCmd{Key: "reminder-time", Value: "9pm"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected invalid reminder time to fail")
	}
}

func TestSetReminderEnabled(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SetCmd{Key: "reminder-enabled", Value: "true"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	settings, _ := ctx.Store.GetSettings()
	if !settings.ReminderEnabled {
		t.Error("expected reminders to be enabled")
	}

	bad := &SetCmd{Key: "reminder-enabled", Value: "maybe"}
	if err := bad.Run(ctx); err == nil {
		t.Error("expected non-boolean value to fail")
	}
}

func TestSetDefaultUser(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SetCmd{Key: "default-user", Value: "sam"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	settings, _ := ctx.Store.GetSettings()
	if settings.DefaultUser != "sam" {
		t.Errorf("expected default user sam, got %s", settings.DefaultUser)
	}
}

func TestSetAndClearKey(t *testing.T) {
	gokeyring.MockInit()
	ctx := setupTestContext(t)

	set := &SetKeyCmd{Key: "sk-test"}
	if err := set.Run(ctx); err != nil {
		t.Fatalf("set-key failed: %v", err)
	}

	clear := &ClearKeyCmd{}
	if err := clear.Run(ctx); err != nil {
		t.Fatalf("clear-key failed: %v", err)
	}
	if err := clear.Run(ctx); err == nil {
		t.Error("expected second clear-key to fail with nothing stored")
	}
}

func TestShow(t *testing.T) {
	gokeyring.MockInit()
	ctx := setupTestContext(t)

	cmd := &ShowCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("show failed: %v", err)
	}
}
