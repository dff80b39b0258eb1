package workbench

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
	"github.com/antonkrylov/wbrunner/internal/launcher"
	"github.com/antonkrylov/wbrunner/internal/procreap"
	"github.com/antonkrylov/wbrunner/internal/stubserver"
)

var prefixPattern = regexp.MustCompile(`EnvironmentPrefix='([0-9a-f]+)'`)

// stubHost "launches" Workbench by starting a stub server and publishing its
// port the way the real server does. Terminating the root stops it.
type stubHost struct {
	root string

	mu     sync.Mutex
	env    map[string]string
	srv    *stubserver.Server
	stops  int
	closed bool
}

func (h *stubHost) Getenv(_ context.Context, name string) (string, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.env[name]
	return v, ok, nil
}

func (h *stubHost) Spawn(_ context.Context, _ string, args []string) (int, error) {
	srv, err := stubserver.New(stubserver.Config{
		WorkspaceRoot: h.root,
		Scripts: func(_ context.Context, req *workbenchv0.RunScriptRequest, send func(*workbenchv0.RunScriptResponse) error) error {
			return send(&workbenchv0.RunScriptResponse{Result: &workbenchv0.ScriptResult{Result: strconv.Quote(req.GetContent())}})
		},
	})
	if err != nil {
		return 0, err
	}
	if err := srv.Start(context.Background()); err != nil {
		return 0, err
	}
	prefix := prefixPattern.FindStringSubmatch(args[len(args)-1])[1]
	h.mu.Lock()
	defer h.mu.Unlock()
	h.srv = srv
	h.env[launcher.PortVariable] = prefix + strconv.Itoa(srv.Port())
	return 777, nil
}

func (h *stubHost) Snapshot(context.Context) ([]procreap.Process, error) {
	return []procreap.Process{{PID: 777, Name: "RunWB2"}}, nil
}

func (h *stubHost) Terminate(_ context.Context, p procreap.Process) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if p.PID != 777 || h.srv == nil {
		return errors.New("no such process")
	}
	h.srv.Stop()
	h.stops++
	return nil
}

func (h *stubHost) Processes() procreap.Table { return h }
func (h *stubHost) OS() string                { return "linux" }

func (h *stubHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

func TestLaunch_RunsScriptsAndExits(t *testing.T) {
	host := &stubHost{root: t.TempDir(), env: map[string]string{"AWP_ROOT252": "/ansys/v252"}}
	ctx := context.Background()

	wb, err := Launch(ctx, LaunchOptions{
		Version:       "252",
		ClientWorkdir: t.TempDir(),
		PollInterval:  5 * time.Millisecond,
		hostOpener: func(context.Context, launcher.Request, *zap.SugaredLogger) (launcher.Host, error) {
			return host, nil
		},
	})
	require.NoError(t, err)
	require.True(t, wb.Launched())
	require.True(t, wb.IsConnected())

	out, err := wb.RunScript(ctx, "hello", "error")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	require.NoError(t, os.WriteFile(filepath.Join(wb.Workdir, "in.txt"), []byte("data"), 0o644))
	stored, err := wb.Upload(ctx, []string{"in.txt"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"in.txt"}, stored)

	wb.Exit(ctx)
	assert.False(t, wb.IsConnected())
	assert.Equal(t, 1, host.stops)
	assert.True(t, host.closed)
	_, err = wb.RunScript(ctx, "hello", "error")
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestLaunch_ConfigurationErrors(t *testing.T) {
	_, err := Launch(context.Background(), LaunchOptions{Version: "240"})
	assert.ErrorIs(t, err, ErrInvalidVersion)

	_, err = Launch(context.Background(), LaunchOptions{Version: "251", Host: "simbox"})
	assert.True(t, errors.Is(err, ErrMissingCredentials) || errors.Is(err, ErrRemoteUnsupported), "err=%v", err)
}

func TestConnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv, err := stubserver.New(stubserver.Config{WorkspaceRoot: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, srv.Start(ctx))
	defer srv.Stop()

	wb, err := Connect(ctx, ConnectOptions{Host: "127.0.0.1", Port: srv.Port()})
	require.NoError(t, err)
	assert.False(t, wb.Launched())
	assert.Equal(t, os.TempDir(), wb.Workdir)
	wb.Exit(ctx)
	assert.ErrorIs(t, wb.Connect(ctx), ErrSessionClosed)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), ConnectOptions{Host: "127.0.0.1", Port: 1, ConnectTimeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
