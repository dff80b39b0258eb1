// Package session is the client side of a Workbench server: one plaintext
// gRPC channel plus the script, upload and download operations issued on it.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
	"github.com/antonkrylov/wbrunner/internal/client"
	"github.com/antonkrylov/wbrunner/internal/exampledata"
	"github.com/antonkrylov/wbrunner/internal/logbridge"
)

var (
	// ErrNotConnected is returned by data operations issued outside Connect
	// and Disconnect.
	ErrNotConnected = errors.New("workbench client is not connected to a server")
	// ErrSessionClosed is returned by Connect after Disconnect. A new Session
	// is needed to talk to the server again.
	ErrSessionClosed = errors.New("session was disconnected and cannot reconnect")
)

// ScriptError carries the error string the server reported for a script.
type ScriptError struct {
	Message string
}

func (e *ScriptError) Error() string {
	return "script failed: " + e.Message
}

// TransferError reports a download the server aborted.
type TransferError struct {
	File    string
	Message string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s failed: %s", e.File, e.Message)
}

type Session struct {
	// Workdir is the local directory relative paths resolve against.
	Workdir string

	host        string
	port        int
	bridge      *logbridge.Bridge
	log         *zap.SugaredLogger
	fetcher     *exampledata.Fetcher
	progressOut io.Writer
	dialOptions []grpc.DialOption

	mu        sync.Mutex
	conn      *grpc.ClientConn
	client    workbenchv0.WorkbenchServiceClient
	connected bool
	closed    bool
}

type Option func(*Session)

// WithBridge shares a logging bridge, for example the one a launcher already
// writes to.
func WithBridge(b *logbridge.Bridge) Option {
	return func(s *Session) {
		s.bridge = b
	}
}

func WithFetcher(f *exampledata.Fetcher) Option {
	return func(s *Session) {
		s.fetcher = f
	}
}

// WithProgressOutput sets where progress meters draw. Defaults to stderr.
func WithProgressOutput(w io.Writer) Option {
	return func(s *Session) {
		s.progressOut = w
	}
}

func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(s *Session) {
		s.dialOptions = append(s.dialOptions, opts...)
	}
}

func New(workdir, host string, port int, opts ...Option) *Session {
	s := &Session{
		Workdir:     workdir,
		host:        host,
		port:        port,
		progressOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.bridge == nil {
		s.bridge = logbridge.New()
	}
	s.log = s.bridge.Logger().Named("session").Sugar()
	if s.fetcher == nil {
		s.fetcher = exampledata.New(exampledata.WithLogger(s.bridge.Logger()))
	}
	return s
}

// Addr is the server address in host:port form.
func (s *Session) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

// Bridge exposes the logging bridge server log entries are dispatched to.
func (s *Session) Bridge() *logbridge.Bridge {
	return s.bridge
}

// Connect opens the channel. It is a no-op when already connected.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	if s.connected {
		return nil
	}
	wb, conn, err := client.DialWorkbench(ctx, s.Addr(), s.dialOptions...)
	if err != nil {
		return fmt.Errorf("connect to workbench server at %s: %w", s.Addr(), err)
	}
	s.conn = conn
	s.client = wb
	s.connected = true
	s.log.Infow("connected to the workbench server", "addr", s.Addr())
	return nil
}

// Disconnect closes the channel. It is safe to call more than once.
func (s *Session) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if !s.connected {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.client = nil
	s.connected = false
	s.log.Info("disconnected from the workbench server")
	return err
}

func (s *Session) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// SetConsoleLogLevel changes what the console shows. Names match like
// "warn" or "Error".
func (s *Session) SetConsoleLogLevel(level string) error {
	return s.bridge.SetConsoleLevel(level)
}

// SetLogFile appends every server log entry to path, replacing any earlier
// log file.
func (s *Session) SetLogFile(path string) error {
	return s.bridge.SetLogFile(path)
}

func (s *Session) ResetLogFile() error {
	return s.bridge.ResetLogFile()
}

func (s *Session) stub() (workbenchv0.WorkbenchServiceClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		s.log.Error(ErrNotConnected.Error())
		return nil, ErrNotConnected
	}
	return s.client, nil
}
