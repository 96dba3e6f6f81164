package reminder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitflow/internal/constants"
)

var findProcessFunc = ps.FindProcess

// Lock guards against concurrent reminder pollers for the same config dir.
type Lock struct {
	path string
}

// AcquireLock claims the reminder lockfile under configDir. A lockfile
// pointing at a live habitflow process blocks the claim; a stale one left
// behind by a dead process is reclaimed.
func AcquireLock(configDir string) (*Lock, error) {
	path := filepath.Join(configDir, constants.ReminderLockfileName)

	if pid, err := readLockfilePID(path); err == nil {
		process, err := findProcessFunc(pid)
		if err == nil && process != nil && strings.HasPrefix(process.Executable(), constants.AppName) {
			return nil, fmt.Errorf("reminder poller already running (pid %d)", pid)
		}
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: path}, nil
}

func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}

func readLockfilePID(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, fmt.Errorf("malformed lockfile: %w", err)
	}
	return pid, nil
}
