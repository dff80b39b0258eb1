package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/antonkrylov/wbrunner/internal/procreap"
)

// nativeHost spawns the server with os/exec on this machine. The server
// reports variables such as its port as NAME=value lines on stdout, so those
// take precedence over this process's own environment.
type nativeHost struct {
	log *zap.SugaredLogger

	mu     sync.Mutex
	vars   map[string]string
	stdout io.ReadCloser
	wg     sync.WaitGroup
}

func newNativeHost(log *zap.SugaredLogger) *nativeHost {
	return &nativeHost{log: log, vars: map[string]string{}}
}

func (h *nativeHost) Getenv(_ context.Context, name string) (string, bool, error) {
	h.mu.Lock()
	v, ok := h.vars[name]
	h.mu.Unlock()
	if ok {
		return v, true, nil
	}
	v, ok = os.LookupEnv(name)
	return v, ok, nil
}

func (h *nativeHost) Spawn(_ context.Context, exe string, args []string) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stdout != nil {
		return 0, errors.New("native host already spawned a process")
	}

	cmd := exec.Command(exe, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return 0, fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	h.stdout = stdout

	h.wg.Add(1)
	go func() {
		h.collect(stdout)
		// Wait only after the pipe is drained; it closes the pipe.
		err := cmd.Wait()
		h.log.Debugw("workbench process exited", "pid", cmd.Process.Pid, "error", err)
	}()
	return cmd.Process.Pid, nil
}

func (h *nativeHost) collect(pipe io.Reader) {
	defer h.wg.Done()
	reader := bufio.NewReader(pipe)
	for {
		data, err := reader.ReadString('\n')
		if line := strings.TrimRight(data, "\r\n"); line != "" {
			h.log.Debug(line)
			if name, value, ok := strings.Cut(line, "="); ok && isVariableName(name) {
				h.mu.Lock()
				h.vars[name] = value
				h.mu.Unlock()
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
				h.log.Debugw("stdout read", "error", err)
			}
			return
		}
	}
}

func isVariableName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func (h *nativeHost) Processes() procreap.Table {
	return procreap.LocalTable()
}

func (h *nativeHost) OS() string {
	return runtime.GOOS
}

// Close stops reading the server's output. It does not stop the server.
func (h *nativeHost) Close() error {
	h.mu.Lock()
	stdout := h.stdout
	h.mu.Unlock()
	if stdout == nil {
		return nil
	}
	err := stdout.Close()
	h.wg.Wait()
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}
