package logbridge

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
)

// ErrUnknownLevel is returned for a level name that matches none of the
// canonical names.
var ErrUnknownLevel = errors.New("unknown log level")

// offLevel sits above every level the bridge writes, so a core at this
// threshold never emits.
const offLevel = zapcore.FatalLevel + 1

type levelEntry struct {
	names  string
	server workbenchv0.LogLevel
	local  zapcore.Level
}

// Order matters: names are matched by substring and the first hit wins.
var levelTable = []levelEntry{
	{names: "none null", server: workbenchv0.LogLevel_LOG_NONE, local: offLevel},
	{names: "debug", server: workbenchv0.LogLevel_LOG_DEBUG, local: zapcore.DebugLevel},
	{names: "information", server: workbenchv0.LogLevel_LOG_INFO, local: zapcore.InfoLevel},
	{names: "warning", server: workbenchv0.LogLevel_LOG_WARNING, local: zapcore.WarnLevel},
	{names: "error", server: workbenchv0.LogLevel_LOG_ERROR, local: zapcore.ErrorLevel},
	{names: "fatal critical", server: workbenchv0.LogLevel_LOG_FATAL, local: zapcore.FatalLevel},
}

func lookup(name string) (levelEntry, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, e := range levelTable {
		if strings.Contains(e.names, needle) {
			return e, true
		}
	}
	return levelEntry{}, false
}

// ServerLevel converts a level name such as "warn" or "Error" to the level
// the server uses to filter what it streams back. Unmatched names map to
// LOG_NONE.
func ServerLevel(name string) workbenchv0.LogLevel {
	e, ok := lookup(name)
	if !ok {
		return workbenchv0.LogLevel_LOG_NONE
	}
	return e.server
}

// LocalLevel converts a level name to the threshold used by the local sinks.
func LocalLevel(name string) (zapcore.Level, error) {
	e, ok := lookup(name)
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return e.local, nil
}

func fromServer(level workbenchv0.LogLevel) (zapcore.Level, bool) {
	switch level {
	case workbenchv0.LogLevel_LOG_DEBUG:
		return zapcore.DebugLevel, true
	case workbenchv0.LogLevel_LOG_INFO:
		return zapcore.InfoLevel, true
	case workbenchv0.LogLevel_LOG_WARNING:
		return zapcore.WarnLevel, true
	case workbenchv0.LogLevel_LOG_ERROR:
		return zapcore.ErrorLevel, true
	case workbenchv0.LogLevel_LOG_FATAL:
		return zapcore.FatalLevel, true
	}
	return 0, false
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("DEBUG")
	case zapcore.InfoLevel:
		enc.AppendString("INFO")
	case zapcore.WarnLevel:
		enc.AppendString("WARNING")
	case zapcore.ErrorLevel:
		enc.AppendString("ERROR")
	default:
		enc.AppendString("CRITICAL")
	}
}
