package client

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
)

// DialWorkbench opens the plaintext channel the Workbench server expects and
// blocks until it is ready or ctx expires.
func DialWorkbench(ctx context.Context, addr string, dialOptions ...grpc.DialOption) (workbenchv0.WorkbenchServiceClient, *grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
		grpc.WithDefaultCallOptions(
			// Project files can be large; chunks are 64 KiB but the server may
			// answer with bigger frames.
			grpc.MaxCallRecvMsgSize(64<<20),
			grpc.MaxCallSendMsgSize(64<<20),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			// Scripts can run for a long time without traffic; stay well above
			// the server's ping enforcement window.
			Time:                5 * time.Minute,
			Timeout:             20 * time.Second,
			PermitWithoutStream: false,
		}),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  250 * time.Millisecond,
				Multiplier: 1.6,
				Jitter:     0.2,
				MaxDelay:   5 * time.Second,
			},
			MinConnectTimeout: 10 * time.Second,
		}),
	}
	opts = append(opts, dialOptions...)

	conn, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return workbenchv0.NewWorkbenchServiceClient(conn), conn, nil
}
