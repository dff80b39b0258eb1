//go:build windows

package launcher

import (
	"context"

	"go.uber.org/zap"
)

const remoteSupported = true

func openPlatformHost(ctx context.Context, req Request, log *zap.SugaredLogger) (Host, error) {
	return openWMIHost(ctx, req, log)
}
