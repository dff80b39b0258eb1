// Package logbridge routes server log entries and client diagnostics to a
// console sink and an optional log file, each with its own threshold.
package logbridge

import (
	"os"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
)

const defaultConsoleLevel = zapcore.WarnLevel

// Bridge owns one console sink and at most one file sink. The file sink is
// fixed at debug so it records everything regardless of the console level.
type Bridge struct {
	mu sync.Mutex

	console      zap.AtomicLevel
	consoleCore  zapcore.Core
	file         *watchedFile
	fileCore     zapcore.Core
	encoder      zapcore.EncoderConfig
	logger       *zap.Logger
	serverLogger *zap.Logger
}

type Option func(*Bridge)

// WithConsoleOutput replaces stderr as the console destination.
func WithConsoleOutput(ws zapcore.WriteSyncer) Option {
	return func(b *Bridge) {
		b.consoleCore = zapcore.NewCore(zapcore.NewConsoleEncoder(b.encoder), ws, b.console)
	}
}

// WithConsoleLevel sets the initial console threshold.
func WithConsoleLevel(l zapcore.Level) Option {
	return func(b *Bridge) {
		b.console.SetLevel(l)
	}
}

func New(opts ...Option) *Bridge {
	b := &Bridge{
		console: zap.NewAtomicLevelAt(defaultConsoleLevel),
		encoder: zapcore.EncoderConfig{
			LevelKey:         "level",
			MessageKey:       "msg",
			NameKey:          "",
			EncodeLevel:      encodeLevel,
			ConsoleSeparator: ": ",
			LineEnding:       zapcore.DefaultLineEnding,
		},
	}
	b.consoleCore = zapcore.NewCore(zapcore.NewConsoleEncoder(b.encoder), zapcore.Lock(os.Stderr), b.console)
	for _, opt := range opts {
		opt(b)
	}
	b.logger = zap.New(&bridgeCore{b: b})
	b.serverLogger = b.logger.Named("WB")
	return b
}

// Logger returns a logger writing through the bridge. It stays valid across
// SetLogFile and ResetLogFile.
func (b *Bridge) Logger() *zap.Logger {
	return b.logger
}

// SetConsoleLevel adjusts only the console threshold. The name is matched
// like ServerLevel, so "warn" selects warning.
func (b *Bridge) SetConsoleLevel(name string) error {
	l, err := LocalLevel(name)
	if err != nil {
		return err
	}
	b.console.SetLevel(l)
	return nil
}

// ConsoleLevel reports the current console threshold.
func (b *Bridge) ConsoleLevel() zapcore.Level {
	return b.console.Level()
}

// SetLogFile attaches a file sink at path in append mode, replacing any
// previous one.
func (b *Bridge) SetLogFile(path string) error {
	if err := b.ResetLogFile(); err != nil {
		return err
	}
	wf, err := openWatchedFile(path)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.file = wf
	b.fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(b.encoder), wf, zapcore.DebugLevel)
	return nil
}

// ResetLogFile detaches and closes the file sink. It is a no-op without one.
func (b *Bridge) ResetLogFile() error {
	b.mu.Lock()
	wf := b.file
	b.file = nil
	b.fileCore = nil
	b.mu.Unlock()
	if wf == nil {
		return nil
	}
	return wf.Close()
}

// LogFile returns the path of the attached file sink, or "".
func (b *Bridge) LogFile() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.file == nil {
		return ""
	}
	return b.file.path
}

// Dispatch forwards one server log entry. Unknown levels are dropped.
func (b *Bridge) Dispatch(level workbenchv0.LogLevel, msg string) {
	l, ok := fromServer(level)
	if !ok {
		return
	}
	// Fatal server entries are recorded, never acted upon: writing through the
	// core bypasses the logger's exit hook.
	ent := zapcore.Entry{Level: l, Time: time.Now(), LoggerName: "WB", Message: msg}
	if ce := b.serverLogger.Core().Check(ent, nil); ce != nil {
		ce.Write()
	}
}

func (b *Bridge) Sync() error {
	return b.logger.Sync()
}

// Close detaches the file sink. Console sync errors are ignored since stderr
// often refuses fsync.
func (b *Bridge) Close() error {
	_ = b.Sync()
	return b.ResetLogFile()
}

type bridgeCore struct {
	b      *Bridge
	fields []zapcore.Field
}

func (c *bridgeCore) Enabled(l zapcore.Level) bool {
	if c.b.console.Enabled(l) {
		return true
	}
	c.b.mu.Lock()
	defer c.b.mu.Unlock()
	return c.b.fileCore != nil && c.b.fileCore.Enabled(l)
}

func (c *bridgeCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &bridgeCore{b: c.b, fields: merged}
}

func (c *bridgeCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *bridgeCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	all := fields
	if len(c.fields) > 0 {
		all = append(append([]zapcore.Field{}, c.fields...), fields...)
	}
	c.b.mu.Lock()
	defer c.b.mu.Unlock()
	var err error
	if c.b.consoleCore.Enabled(ent.Level) {
		err = multierr.Append(err, c.b.consoleCore.Write(ent, all))
	}
	if c.b.fileCore != nil && c.b.fileCore.Enabled(ent.Level) {
		err = multierr.Append(err, c.b.fileCore.Write(ent, all))
	}
	return err
}

func (c *bridgeCore) Sync() error {
	c.b.mu.Lock()
	defer c.b.mu.Unlock()
	err := c.b.consoleCore.Sync()
	if c.b.fileCore != nil {
		err = multierr.Append(err, c.b.fileCore.Sync())
	}
	return err
}
