// Package launcher starts a Workbench server on a local or remote host and
// discovers the port it listens on.
package launcher

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/antonkrylov/wbrunner/internal/procreap"
)

// Handle identifies the launched server. PID is -1 once the server has been
// torn down.
type Handle struct {
	PID    int
	Host   Host
	Prefix string
}

type Launcher struct {
	log          *zap.Logger
	sugar        *zap.SugaredLogger
	openHost     HostOpener
	clock        clock.Clock
	pollInterval time.Duration
	timeout      time.Duration
	newPrefix    func() string

	mu     sync.Mutex
	handle *Handle
}

type Option func(*Launcher)

func WithLogger(l *zap.Logger) Option {
	return func(la *Launcher) {
		la.log = l
	}
}

// WithHostOpener replaces the platform host, mostly for tests.
func WithHostOpener(fn HostOpener) Option {
	return func(la *Launcher) {
		la.openHost = fn
	}
}

func WithClock(c clock.Clock) Option {
	return func(la *Launcher) {
		la.clock = c
	}
}

// WithPollInterval sets how often the port variable is read. Non-positive
// values keep the default.
func WithPollInterval(d time.Duration) Option {
	return func(la *Launcher) {
		if d > 0 {
			la.pollInterval = d
		}
	}
}

// WithDiscoveryTimeout bounds port discovery. Non-positive values keep the
// default.
func WithDiscoveryTimeout(d time.Duration) Option {
	return func(la *Launcher) {
		if d > 0 {
			la.timeout = d
		}
	}
}

func New(opts ...Option) *Launcher {
	la := &Launcher{
		log:          zap.NewNop(),
		openHost:     OpenHost,
		clock:        clock.New(),
		pollInterval: DefaultPollInterval,
		timeout:      DefaultDiscoveryTimeout,
		newPrefix:    newPrefix,
	}
	for _, opt := range opts {
		opt(la)
	}
	la.log = la.log.Named("launcher")
	la.sugar = la.log.Sugar()
	return la
}

// newPrefix returns 128 random bits as 32 hex digits.
func newPrefix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Launch starts the server described by req and returns its port. On any
// failure the port is 0. A server that started but never published a port
// is kept so Exit can still tear it down.
func (la *Launcher) Launch(ctx context.Context, req Request) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	la.mu.Lock()
	defer la.mu.Unlock()
	if la.handle != nil {
		return 0, ErrAlreadyLaunched
	}

	host, err := la.openHost(ctx, req, la.sugar)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrHostConnection, err)
	}

	root := la.installRoot(ctx, host, req.Version)
	prefix := la.newPrefix()
	exe, args := BuildCommand(host.OS(), root, req, prefix)
	la.sugar.Debugw("starting workbench", "command", CommandLine(exe, args))

	pid, err := host.Spawn(ctx, exe, args)
	if err != nil {
		la.sugar.Errorw("workbench failed to launch on the host", "error", err)
		_ = host.Close()
		return 0, fmt.Errorf("%w: %w", ErrLaunchFailed, err)
	}
	la.handle = &Handle{PID: pid, Host: host, Prefix: prefix}
	la.sugar.Infof("workbench launched on the host with process ID: %d", pid)

	port, err := DiscoverPort(ctx, host, prefix, DiscoveryOptions{
		Interval: la.pollInterval,
		Timeout:  la.timeout,
		Clock:    la.clock,
		Logger:   la.sugar,
	})
	if err != nil {
		la.sugar.Errorw("failed to retrieve the port used by the workbench service", "error", err)
		return 0, err
	}
	la.sugar.Infof("workbench service uses port: %d", port)
	return port, nil
}

func (la *Launcher) installRoot(ctx context.Context, host Host, version string) string {
	name := RootVariablePrefix + version
	root, ok, err := host.Getenv(ctx, name)
	if err == nil && ok && root != "" {
		la.sugar.Infof("ansys installation is found at: %s", root)
		return root
	}
	fallback := DefaultInstallRoot(host.OS(), version)
	la.sugar.Warnw("ansys installation variable not set, using the default location", "variable", name, "path", fallback, "error", err)
	return fallback
}

// Handle returns a copy of the current handle, with PID -1 when no server
// is running.
func (la *Launcher) Handle() Handle {
	la.mu.Lock()
	defer la.mu.Unlock()
	if la.handle == nil {
		return Handle{PID: -1}
	}
	return *la.handle
}

// Exit terminates the server's process tree and closes the host session.
// It never fails; problems are logged.
func (la *Launcher) Exit(ctx context.Context) {
	la.mu.Lock()
	defer la.mu.Unlock()
	if la.handle == nil {
		return
	}
	h := la.handle
	la.handle = nil
	if h.PID > 0 {
		procreap.New(h.Host.Processes(), procreap.WithLogger(la.log)).Terminate(ctx, h.PID)
	}
	if err := h.Host.Close(); err != nil {
		la.sugar.Warnw("closing host connection", "error", err)
	}
}
