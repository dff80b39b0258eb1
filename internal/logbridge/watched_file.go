package logbridge

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/multierr"
)

// watchedFile is an append-mode log file that is reopened on the next write
// after it was renamed or removed underneath us, so external log rotation
// works without restarting the client.
type watchedFile struct {
	path string

	mu    sync.Mutex
	f     *os.File
	stale bool

	watcher *fsnotify.Watcher
	done    chan struct{}
}

func openWatchedFile(path string) (*watchedFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(abs, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("watch log file: %w", err)
	}
	// Watch the directory: a watch on the file itself dies with the inode.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		_ = f.Close()
		return nil, fmt.Errorf("watch log file: %w", err)
	}
	w := &watchedFile{path: abs, f: f, watcher: watcher, done: make(chan struct{})}
	go w.watch()
	return w, nil
}

func (w *watchedFile) watch() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				w.mu.Lock()
				w.stale = true
				w.mu.Unlock()
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *watchedFile) isStale() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stale
}

func (w *watchedFile) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return 0, os.ErrClosed
	}
	if w.stale {
		f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return 0, fmt.Errorf("reopen log file: %w", err)
		}
		_ = w.f.Close()
		w.f = f
		w.stale = false
	}
	return w.f.Write(p)
}

func (w *watchedFile) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	return w.f.Sync()
}

func (w *watchedFile) Close() error {
	w.mu.Lock()
	f := w.f
	w.f = nil
	w.mu.Unlock()
	werr := w.watcher.Close()
	<-w.done
	if f == nil {
		return werr
	}
	return multierr.Append(f.Close(), werr)
}
