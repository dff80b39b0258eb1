//go:build !windows

package launcher

import (
	"context"

	"go.uber.org/zap"
)

// Remote hosts are reached through WMI, which only Windows clients have.
const remoteSupported = false

func openPlatformHost(_ context.Context, req Request, log *zap.SugaredLogger) (Host, error) {
	if req.Host != "" {
		return nil, ErrRemoteUnsupported
	}
	return newNativeHost(log), nil
}
