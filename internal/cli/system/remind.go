package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/julianstephens/habitflow/internal/cli"
	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/reminder"
)

type RemindCmd struct {
	Interval time.Duration `help:"Poll interval." default:"1m"`
	Once     bool          `help:"Check once and exit instead of polling."`
}

func (cmd *RemindCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if cmd.Once {
		p := reminder.New(ctx.Store, cmd.Interval)
		return p.RunOnce()
	}

	lockDir, err := reminderLockDir(ctx.Store.GetConfigPath())
	if err != nil {
		return err
	}
	lock, err := reminder.AcquireLock(lockDir)
	if err != nil {
		return err
	}
	defer lock.Release()

	fmt.Printf("Reminder poller started (interval: %s). Press Ctrl+C to stop.\n", cmd.Interval)
	logger.Info("reminder poller started", "interval", cmd.Interval)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := reminder.New(ctx.Store, cmd.Interval)
	if err := p.Run(sigCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Println("Reminder poller stopped.")
	return nil
}

// reminderLockDir picks a directory for the reminder lockfile. For
// SQLite the database directory is used; for connection strings the
// user config dir.
func reminderLockDir(configPath string) (string, error) {
	if strings.HasPrefix(configPath, "postgres://") || strings.HasPrefix(configPath, "postgresql://") {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user config dir: %w", err)
		}
		return filepath.Join(configDir, constants.AppName), nil
	}
	return filepath.Dir(configPath), nil
}
