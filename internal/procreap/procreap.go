// Package procreap terminates a process together with every descendant,
// children before parents.
package procreap

import (
	"context"

	"go.uber.org/zap"
)

// Process is one row of a process table snapshot.
type Process struct {
	PID int
	// PPID is only meaningful when HasParent is set.
	PPID      int
	HasParent bool
	Name      string
}

// Table reads and acts on the process table of one host.
type Table interface {
	Snapshot(ctx context.Context) ([]Process, error)
	Terminate(ctx context.Context, p Process) error
}

// Levels returns the descendants of root grouped by generation: children of
// root first, then grandchildren, and so on. root itself is not included.
func Levels(snapshot []Process, root int) [][]Process {
	children := make(map[int][]Process, len(snapshot))
	for _, p := range snapshot {
		if !p.HasParent || p.PID == p.PPID {
			continue
		}
		children[p.PPID] = append(children[p.PPID], p)
	}

	var levels [][]Process
	seen := map[int]bool{root: true}
	frontier := []int{root}
	for len(frontier) > 0 {
		var next []Process
		for _, pid := range frontier {
			for _, c := range children[pid] {
				if seen[c.PID] {
					continue
				}
				seen[c.PID] = true
				next = append(next, c)
			}
		}
		if len(next) == 0 {
			break
		}
		levels = append(levels, next)
		frontier = frontier[:0]
		for _, p := range next {
			frontier = append(frontier, p.PID)
		}
	}
	return levels
}

type Reaper struct {
	table Table
	log   *zap.SugaredLogger
}

type Option func(*Reaper)

func WithLogger(l *zap.Logger) Option {
	return func(r *Reaper) {
		r.log = l.Named("reaper").Sugar()
	}
}

func New(table Table, opts ...Option) *Reaper {
	r := &Reaper{table: table, log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Terminate kills the tree rooted at root, deepest generation first and root
// last. The table is read once. Failures are logged per process and never
// stop the teardown.
func (r *Reaper) Terminate(ctx context.Context, root int) {
	rootProc := Process{PID: root}
	snapshot, err := r.table.Snapshot(ctx)
	if err != nil {
		r.log.Warnw("process table unavailable, terminating root only", "pid", root, "error", err)
		r.kill(ctx, rootProc)
		return
	}
	for _, p := range snapshot {
		if p.PID == root {
			rootProc = p
			break
		}
	}

	levels := Levels(snapshot, root)
	for i := len(levels) - 1; i >= 0; i-- {
		for _, p := range levels[i] {
			r.kill(ctx, p)
		}
	}
	r.kill(ctx, rootProc)
}

func (r *Reaper) kill(ctx context.Context, p Process) {
	if err := r.table.Terminate(ctx, p); err != nil {
		r.log.Warnw("failed to terminate process", "pid", p.PID, "name", p.Name, "error", err)
		return
	}
	r.log.Debugw("terminated process", "pid", p.PID, "name", p.Name)
}
