package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/antonkrylov/wbrunner/internal/archive"
	"github.com/antonkrylov/wbrunner/workbench"
)

// withSession connects, runs fn and always exits the session afterwards.
// Interrupts cancel the context handed to fn.
func withSession(root *rootOptions, fn func(ctx context.Context, wb *workbench.Workbench) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	wb, err := root.connect(ctx)
	if err != nil {
		return err
	}
	defer wb.Exit(context.Background())
	return fn(ctx, wb)
}

func newConnectCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "connect-check",
		Short: "Verify that a Workbench server accepts connections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(root, func(_ context.Context, wb *workbench.Workbench) error {
				fmt.Fprintf(cmd.OutOrStdout(), "connected to %s (workdir %s)\n", wb.Addr(), wb.Workdir)
				return nil
			})
		},
	}
}

func newRunCmd(root *rootOptions) *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run an inline script on the server and print its result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(root, func(ctx context.Context, wb *workbench.Workbench) error {
				out, err := wb.RunScript(ctx, args[0], level)
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().StringVar(&level, "script-log-level", "error", "minimum level of server log messages to forward")
	return cmd
}

func newRunFileCmd(root *rootOptions) *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "run-file <path>",
		Short: "Run a script file (relative to the workdir) on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(root, func(ctx context.Context, wb *workbench.Workbench) error {
				out, err := wb.RunScriptFile(ctx, args[0], level)
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().StringVar(&level, "script-log-level", "error", "minimum level of server log messages to forward")
	return cmd
}

func newUploadCmd(root *rootOptions) *cobra.Command {
	var showProgress bool
	cmd := &cobra.Command{
		Use:   "upload <path|glob>...",
		Short: "Upload files from the workdir to the server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(root, func(ctx context.Context, wb *workbench.Workbench) error {
				names, err := wb.Upload(ctx, args, showProgress)
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&showProgress, "progress", true, "show a progress bar per file")
	return cmd
}

func newUploadExampleCmd(root *rootOptions) *cobra.Command {
	var showProgress bool
	cmd := &cobra.Command{
		Use:   "upload-example <relative-path>",
		Short: "Fetch a file from the example-data repository and upload it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(root, func(ctx context.Context, wb *workbench.Workbench) error {
				names, err := wb.UploadFromExampleRepo(ctx, args[0], showProgress)
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&showProgress, "progress", true, "show a progress bar")
	return cmd
}

func newDownloadCmd(root *rootOptions) *cobra.Command {
	var (
		showProgress bool
		targetDir    string
		extract      bool
	)
	cmd := &cobra.Command{
		Use:   "download <name|glob>",
		Short: "Download one server file, or a zip of all matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(root, func(ctx context.Context, wb *workbench.Workbench) error {
				name, err := wb.Download(ctx, args[0], workbench.DownloadOptions{
					ShowProgress: showProgress,
					TargetDir:    targetDir,
				})
				if err != nil {
					return err
				}
				dir := targetDir
				if dir == "" {
					dir = wb.Workdir
				}
				if !extract || !strings.HasSuffix(name, ".zip") {
					fmt.Fprintln(cmd.OutOrStdout(), name)
					return nil
				}
				archivePath := filepath.Join(dir, name)
				files, err := archive.Extract(archivePath, dir)
				if err != nil {
					return fmt.Errorf("extract %s: %w", name, err)
				}
				_ = os.Remove(archivePath)
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&showProgress, "progress", true, "show a progress bar")
	cmd.Flags().StringVar(&targetDir, "target-dir", "", "directory to store the download (default: workdir)")
	cmd.Flags().BoolVar(&extract, "extract", false, "unpack multi-file downloads and remove the archive")
	return cmd
}

func newStartServerCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "start-server <mechanical|fluent|sherlock> <system>",
		Short:     "Start a solver server for a Workbench system",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"mechanical", "fluent", "sherlock"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, system := strings.ToLower(args[0]), args[1]
			return withSession(root, func(ctx context.Context, wb *workbench.Workbench) error {
				switch kind {
				case "mechanical":
					out, err := wb.StartMechanicalServer(ctx, system)
					if err != nil {
						return err
					}
					return printResult(cmd.OutOrStdout(), out)
				case "sherlock":
					out, err := wb.StartSherlockServer(ctx, system)
					if err != nil {
						return err
					}
					return printResult(cmd.OutOrStdout(), out)
				case "fluent":
					path, err := wb.StartFluentServer(ctx, system)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), path)
					return nil
				default:
					return fmt.Errorf("unknown server kind %q (expected mechanical, fluent or sherlock)", args[0])
				}
			})
		},
	}
}
