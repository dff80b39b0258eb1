package launcher

import (
	"context"

	"go.uber.org/zap"

	"github.com/antonkrylov/wbrunner/internal/procreap"
)

// Host is the machine the server runs on, reached either directly or through
// a remote management session.
type Host interface {
	EnvReader
	// Spawn starts exe and returns its process id. The process must outlive
	// ctx.
	Spawn(ctx context.Context, exe string, args []string) (int, error)
	// Processes is the host's process table, used to tear the server down.
	Processes() procreap.Table
	// OS is the host's GOOS-style operating system name.
	OS() string
	Close() error
}

// HostOpener opens the management session a request targets.
type HostOpener func(ctx context.Context, req Request, log *zap.SugaredLogger) (Host, error)

// OpenHost picks the host implementation for this platform.
func OpenHost(ctx context.Context, req Request, log *zap.SugaredLogger) (Host, error) {
	return openPlatformHost(ctx, req, log)
}
