//go:build linux

package procreap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/c9s/goprocinfo/linux"
	"golang.org/x/sys/unix"
)

// ProcTable reads /proc and signals with SIGTERM.
type ProcTable struct {
	// Root defaults to /proc.
	Root string
}

func (t ProcTable) root() string {
	if t.Root == "" {
		return "/proc"
	}
	return t.Root
}

func (t ProcTable) Snapshot(ctx context.Context) ([]Process, error) {
	entries, err := os.ReadDir(t.root())
	if err != nil {
		return nil, err
	}
	procs := make([]Process, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() {
			continue
		}
		if _, err := strconv.Atoi(e.Name()); err != nil {
			continue
		}
		stat, err := linux.ReadProcessStat(filepath.Join(t.root(), e.Name(), "stat"))
		if err != nil {
			// exited between ReadDir and here
			continue
		}
		procs = append(procs, Process{
			PID:       int(stat.Pid),
			PPID:      int(stat.Ppid),
			HasParent: stat.Ppid > 0,
			Name:      stat.Comm,
		})
	}
	return procs, nil
}

func (t ProcTable) Terminate(_ context.Context, p Process) error {
	err := unix.Kill(p.PID, unix.SIGTERM)
	if errors.Is(err, unix.ESRCH) {
		return nil
	}
	return err
}

// LocalTable is the process table of this machine.
func LocalTable() Table {
	return ProcTable{}
}
