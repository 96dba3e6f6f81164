package reminder

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitflow/internal/constants"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (p *fakeProcess) Pid() int           { return p.pid }
func (p *fakeProcess) PPid() int          { return 0 }
func (p *fakeProcess) Executable() string { return p.executable }

func TestAcquireLockFresh(t *testing.T) {
	dir := t.TempDir()

	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("AcquireLock failed: %v", err)
	}
	defer lock.Release()

	content, err := os.ReadFile(filepath.Join(dir, constants.ReminderLockfileName))
	if err != nil {
		t.Fatalf("expected lockfile to exist: %v", err)
	}
	if string(content) != strconv.Itoa(os.Getpid()) {
		t.Errorf("expected lockfile to hold our pid, got %q", content)
	}
}

func TestAcquireLockBlockedByLiveProcess(t *testing.T) {
	dir := t.TempDir()
	writeLockfile(t, dir, "12345")

	orig := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &fakeProcess{pid: pid, executable: "habitflow"}, nil
	}
	defer func() { findProcessFunc = orig }()

	if _, err := AcquireLock(dir); err == nil {
		t.Fatal("expected AcquireLock to fail while another poller is running")
	}
}

func TestAcquireLockReclaimsStale(t *testing.T) {
	dir := t.TempDir()
	writeLockfile(t, dir, "12345")

	orig := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		return nil, nil
	}
	defer func() { findProcessFunc = orig }()

	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("expected stale lockfile to be reclaimed: %v", err)
	}
	lock.Release()
}

func TestAcquireLockIgnoresForeignProcess(t *testing.T) {
	dir := t.TempDir()
	writeLockfile(t, dir, "12345")

	orig := findProcessFunc
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &fakeProcess{pid: pid, executable: "chrome"}, nil
	}
	defer func() { findProcessFunc = orig }()

	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("expected lockfile held by a foreign process to be reclaimed: %v", err)
	}
	lock.Release()
}

func TestAcquireLockReclaimsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeLockfile(t, dir, "not-a-pid")

	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("expected malformed lockfile to be reclaimed: %v", err)
	}
	lock.Release()
}

func TestReleaseRemovesLockfile(t *testing.T) {
	dir := t.TempDir()

	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("AcquireLock failed: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, constants.ReminderLockfileName)); !os.IsNotExist(err) {
		t.Error("expected lockfile to be removed after release")
	}
}

func writeLockfile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, constants.ReminderLockfileName), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write lockfile fixture: %v", err)
	}
}
