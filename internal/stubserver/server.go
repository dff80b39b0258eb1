// Package stubserver is a loopback WorkbenchService: it stores uploads in a
// workspace directory, serves downloads from it and hands scripts to a
// pluggable handler. Tests and local development use it in place of a real
// Workbench server.
package stubserver

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
)

// ScriptHandler runs one RunScript call. It streams zero or more log batches
// and at most one result through send.
type ScriptHandler func(ctx context.Context, req *workbenchv0.RunScriptRequest, send func(*workbenchv0.RunScriptResponse) error) error

type Config struct {
	ListenAddr    string
	WorkspaceRoot string
	Scripts       ScriptHandler
	// ChunkSize bounds download frames. Defaults to 64 KiB.
	ChunkSize int
	Logger    *zap.SugaredLogger
}

type Server struct {
	cfg Config

	grpcServer *grpc.Server
	listener   net.Listener
}

func New(cfg Config) (*Server, error) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = "127.0.0.1:0"
	}
	if cfg.WorkspaceRoot == "" {
		return nil, fmt.Errorf("workspace root is required")
	}
	info, err := os.Stat(cfg.WorkspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("workspace root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root %s is not a directory", cfg.WorkspaceRoot)
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 64 * 1024
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	return &Server{cfg: cfg}, nil
}

func (s *Server) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return err
	}
	s.listener = lis

	s.grpcServer = grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    60 * time.Second,
			Timeout: 20 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             20 * time.Second,
			PermitWithoutStream: true,
		}),
	)
	workbenchv0.RegisterWorkbenchServiceServer(s.grpcServer, &workbenchService{
		root:      s.cfg.WorkspaceRoot,
		scripts:   s.cfg.Scripts,
		chunkSize: s.cfg.ChunkSize,
		log:       s.cfg.Logger,
	})

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	go func() {
		_ = s.grpcServer.Serve(lis)
	}()
	s.cfg.Logger.Infow("stub server listening", "addr", lis.Addr().String(), "root", s.cfg.WorkspaceRoot)
	return nil
}

func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Port is the bound TCP port, or 0 before Start.
func (s *Server) Port() int {
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

func (s *Server) Stop() {
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}
