package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	cliconfig "github.com/antonkrylov/wbrunner/internal/cli/config"
	"github.com/antonkrylov/wbrunner/internal/client"
	"github.com/antonkrylov/wbrunner/workbench"
)

type rootOptions struct {
	host        string
	port        int
	workdir     string
	timeout     time.Duration
	configPath  string
	contextName string
	logLevel    string
	logFile     string

	conn *client.Connection
}

func (r *rootOptions) prepare() error {
	resolved, err := client.ResolveConnection(client.ConnectionFlags{
		ConfigPath:  r.configPath,
		ContextName: r.contextName,
		Host:        r.host,
		Port:        r.port,
		Workdir:     r.workdir,
		Timeout:     r.timeout,
	}, false)
	if err != nil {
		return err
	}
	r.conn = resolved
	return nil
}

// connect attaches to the resolved server and applies the logging flags.
func (r *rootOptions) connect(ctx context.Context) (*workbench.Workbench, error) {
	if r.conn.Port == 0 {
		return nil, fmt.Errorf("server port is required (--port, config context or WBRUNNER_PORT)")
	}
	wb, err := workbench.Connect(ctx, workbench.ConnectOptions{
		Host:           r.conn.Host,
		Port:           r.conn.Port,
		ClientWorkdir:  r.conn.Workdir,
		ConnectTimeout: r.conn.Timeout,
	})
	if err != nil {
		return nil, err
	}
	if err := r.applyLogging(wb); err != nil {
		wb.Exit(ctx)
		return nil, err
	}
	return wb, nil
}

func (r *rootOptions) applyLogging(wb *workbench.Workbench) error {
	if r.logLevel != "" {
		if err := wb.SetConsoleLogLevel(r.logLevel); err != nil {
			return err
		}
	}
	if r.logFile != "" {
		if err := wb.SetLogFile(r.logFile); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:          "wbrunner",
		Short:        "Launch and drive Ansys Workbench servers over gRPC",
		SilenceUsage: true,
	}
	defaultConfig := os.Getenv("WBRUNNER_CONFIG")
	if defaultConfig == "" {
		defaultConfig = cliconfig.DefaultConfigPath()
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", defaultConfig, "path to wbrunner config file (default $HOME/.wbrunner/config)")
	flags.StringVar(&opts.contextName, "context", "", "context name within the config (overrides currentContext)")
	flags.StringVar(&opts.host, "host", "", "server host (overrides config)")
	flags.IntVar(&opts.port, "port", 0, "server port (overrides config)")
	flags.StringVar(&opts.workdir, "workdir", "", "client working directory; defaults to config or the temp dir")
	flags.DurationVar(&opts.timeout, "timeout", 0, "connect timeout; defaults to config or 15s")
	flags.StringVar(&opts.logLevel, "log-level", "", "console log level: debug|info|warning|error|critical|none")
	flags.StringVar(&opts.logFile, "log-file", "", "also write all log messages to this file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return opts.prepare()
	}

	rootCmd.AddCommand(newLaunchCmd(opts))
	rootCmd.AddCommand(newConnectCheckCmd(opts))
	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newRunFileCmd(opts))
	rootCmd.AddCommand(newUploadCmd(opts))
	rootCmd.AddCommand(newUploadExampleCmd(opts))
	rootCmd.AddCommand(newDownloadCmd(opts))
	rootCmd.AddCommand(newStartServerCmd(opts))
	rootCmd.AddCommand(newDoctorCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// printResult writes a script result as indented JSON; nil prints nothing.
func printResult(w io.Writer, v any) error {
	if v == nil {
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
