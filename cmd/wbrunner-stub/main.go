package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
	"github.com/antonkrylov/wbrunner/internal/launcher"
	"github.com/antonkrylov/wbrunner/internal/stubserver"
)

var version = "dev"

func main() {
	var listen string
	var workspaceRoot string
	var logLevel string
	var announce bool

	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "wbrunner-stub (%s)\n\n", version)
		fmt.Fprintf(out, "Usage:\n  %s [flags]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&listen, "listen", "127.0.0.1:0", "listen address for the WorkbenchService gRPC server")
	flag.StringVar(&workspaceRoot, "workspace-root", ".", "directory that stores uploads and serves downloads")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")
	flag.BoolVar(&announce, "announce", true, "print "+launcher.PortVariable+"=<port> on stdout once listening")
	flag.Parse()

	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(logLevel)))
	if err != nil {
		log.Printf("unknown -log-level=%q (expected debug|info|warn|error); defaulting to info", logLevel)
		level = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Named("stub").Sugar()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv, err := stubserver.New(stubserver.Config{
		ListenAddr:    listen,
		WorkspaceRoot: workspaceRoot,
		Scripts:       echoScript(sugar),
		Logger:        sugar,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := srv.Start(ctx); err != nil {
		log.Fatal(err)
	}
	if announce {
		fmt.Printf("%s=%d\n", launcher.PortVariable, srv.Port())
	}
	<-ctx.Done()
	srv.Stop()
}

// echoScript logs each script at info level on the server and returns its
// body as a JSON string.
func echoScript(log *zap.SugaredLogger) stubserver.ScriptHandler {
	return func(_ context.Context, req *workbenchv0.RunScriptRequest, send func(*workbenchv0.RunScriptResponse) error) error {
		log.Debugw("script received", "bytes", len(req.GetContent()), "log_level", req.GetLogLevel().String())
		if req.GetLogLevel() != workbenchv0.LogLevel_LOG_NONE && req.GetLogLevel() <= workbenchv0.LogLevel_LOG_INFO {
			if err := send(&workbenchv0.RunScriptResponse{Log: &workbenchv0.Log{Messages: []*workbenchv0.LogMessage{{
				Level:   workbenchv0.LogLevel_LOG_INFO,
				Message: fmt.Sprintf("running %d byte script", len(req.GetContent())),
			}}}}); err != nil {
				return err
			}
		}
		result, err := json.Marshal(req.GetContent())
		if err != nil {
			return err
		}
		return send(&workbenchv0.RunScriptResponse{Result: &workbenchv0.ScriptResult{Result: string(result)}})
	}
}
