//go:build !linux

package procreap

import (
	"context"
	"errors"
	"os"
)

var errNoSnapshot = errors.New("process table snapshots are not supported on this platform")

// rootOnlyTable cannot enumerate processes, so the reaper falls back to
// killing the root alone.
type rootOnlyTable struct{}

func (rootOnlyTable) Snapshot(context.Context) ([]Process, error) {
	return nil, errNoSnapshot
}

func (rootOnlyTable) Terminate(_ context.Context, p Process) error {
	proc, err := os.FindProcess(p.PID)
	if err != nil {
		return err
	}
	return proc.Kill()
}

// LocalTable is the process table of this machine.
func LocalTable() Table {
	return rootOnlyTable{}
}
