// Package workbench launches or attaches to an Ansys Workbench server and
// drives it: scripts, file transfer and auxiliary solver servers.
//
//	wb, err := workbench.Launch(ctx, workbench.LaunchOptions{Version: "252"})
//	if err != nil {
//		return err
//	}
//	defer wb.Exit(ctx)
//	names, err := wb.Upload(ctx, []string{"*.wbpz"}, true)
package workbench

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/antonkrylov/wbrunner/internal/exampledata"
	"github.com/antonkrylov/wbrunner/internal/launcher"
	"github.com/antonkrylov/wbrunner/internal/logbridge"
	"github.com/antonkrylov/wbrunner/internal/session"
)

const (
	DefaultHost           = "localhost"
	DefaultConnectTimeout = 15 * time.Second
)

type (
	DownloadOptions = session.DownloadOptions
	ScriptError     = session.ScriptError
	TransferError   = session.TransferError
)

var (
	ErrNotConnected         = session.ErrNotConnected
	ErrSessionClosed        = session.ErrSessionClosed
	ErrInvalidVersion       = launcher.ErrInvalidVersion
	ErrMissingCredentials   = launcher.ErrMissingCredentials
	ErrRemoteUnsupported    = launcher.ErrRemoteUnsupported
	ErrHostConnection       = launcher.ErrHostConnection
	ErrLaunchFailed         = launcher.ErrLaunchFailed
	ErrPortDiscoveryTimeout = launcher.ErrPortDiscoveryTimeout
)

type LaunchOptions struct {
	// Version is the three digit release, "242" or later.
	Version       string
	ShowGUI       bool
	ServerWorkdir string
	// Host, Username and Password select a remote Windows machine.
	Host     string
	Username string
	Password string

	// ClientWorkdir defaults to the system temp directory.
	ClientWorkdir    string
	ConnectTimeout   time.Duration
	PollInterval     time.Duration
	DiscoveryTimeout time.Duration
	// ExampleDataURL overrides the example-data repository.
	ExampleDataURL string

	hostOpener launcher.HostOpener
}

type ConnectOptions struct {
	Host           string
	Port           int
	ClientWorkdir  string
	ConnectTimeout time.Duration
	ExampleDataURL string
}

// Workbench is a connected client, plus the launched server when it was
// started by Launch.
type Workbench struct {
	*session.Session

	launcher *launcher.Launcher
	log      *zap.SugaredLogger
}

// Launch starts a server and connects to it. A partially started server is
// torn down before the error is returned.
func Launch(ctx context.Context, opts LaunchOptions) (*Workbench, error) {
	bridge := logbridge.New()
	launchOpts := []launcher.Option{
		launcher.WithLogger(bridge.Logger()),
		launcher.WithPollInterval(opts.PollInterval),
		launcher.WithDiscoveryTimeout(opts.DiscoveryTimeout),
	}
	if opts.hostOpener != nil {
		launchOpts = append(launchOpts, launcher.WithHostOpener(opts.hostOpener))
	}
	la := launcher.New(launchOpts...)

	port, err := la.Launch(ctx, launcher.Request{
		Version:       opts.Version,
		ShowGUI:       opts.ShowGUI,
		ServerWorkdir: opts.ServerWorkdir,
		Host:          opts.Host,
		Username:      opts.Username,
		Password:      opts.Password,
	})
	if err != nil {
		la.Exit(ctx)
		_ = bridge.Close()
		return nil, err
	}

	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	wb, err := connect(ctx, bridge, host, port, opts.ClientWorkdir, opts.ConnectTimeout, opts.ExampleDataURL)
	if err != nil {
		la.Exit(ctx)
		_ = bridge.Close()
		return nil, err
	}
	wb.launcher = la
	return wb, nil
}

// Connect attaches to a server that is already running.
func Connect(ctx context.Context, opts ConnectOptions) (*Workbench, error) {
	host := opts.Host
	if host == "" {
		host = DefaultHost
	}
	bridge := logbridge.New()
	wb, err := connect(ctx, bridge, host, opts.Port, opts.ClientWorkdir, opts.ConnectTimeout, opts.ExampleDataURL)
	if err != nil {
		_ = bridge.Close()
		return nil, err
	}
	return wb, nil
}

func connect(ctx context.Context, bridge *logbridge.Bridge, host string, port int, workdir string, timeout time.Duration, exampleURL string) (*Workbench, error) {
	if workdir == "" {
		workdir = os.TempDir()
	}
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	fetchOpts := []exampledata.Option{exampledata.WithLogger(bridge.Logger())}
	if exampleURL != "" {
		fetchOpts = append(fetchOpts, exampledata.WithBaseURL(exampleURL))
	}
	s := session.New(workdir, host, port,
		session.WithBridge(bridge),
		session.WithFetcher(exampledata.New(fetchOpts...)),
	)

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.Connect(dialCtx); err != nil {
		return nil, err
	}
	return &Workbench{Session: s, log: bridge.Logger().Named("workbench").Sugar()}, nil
}

// Launched reports whether Exit will also stop the server.
func (w *Workbench) Launched() bool {
	return w.launcher != nil
}

// Exit disconnects and, for a launched server, terminates its process tree.
// It never fails; problems are logged.
func (w *Workbench) Exit(ctx context.Context) {
	if err := w.Disconnect(); err != nil {
		w.log.Warnw("disconnect", "error", err)
	}
	if w.launcher != nil {
		w.launcher.Exit(ctx)
		w.launcher = nil
	}
	_ = w.Bridge().Close()
}
