package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/antonkrylov/wbrunner/workbench"
)

// newLaunchCmd starts a server and keeps it alive until interrupted. The
// server's process tree is torn down on exit.
func newLaunchCmd(root *rootOptions) *cobra.Command {
	var (
		version       string
		showGUI       bool
		serverWorkdir string
		remoteHost    string
		username      string
		passwordEnv   string
		scriptFile    string
	)
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch a Workbench server and hold it until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c := root.conn.Context; c != nil {
				if !cmd.Flags().Changed("release") && c.Release != "" {
					version = c.Release
				}
				if !cmd.Flags().Changed("server-workdir") && c.ServerWorkdir != "" {
					serverWorkdir = c.ServerWorkdir
				}
				if !cmd.Flags().Changed("gui") && c.ShowGUI != nil {
					showGUI = *c.ShowGUI
				}
				if !cmd.Flags().Changed("username") && c.Username != "" {
					username = c.Username
				}
				if !cmd.Flags().Changed("password-env") && c.PasswordEnv != "" {
					passwordEnv = c.PasswordEnv
				}
			}
			password := ""
			if strings.TrimSpace(passwordEnv) != "" {
				password = os.Getenv(passwordEnv)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			wb, err := workbench.Launch(ctx, workbench.LaunchOptions{
				Version:        version,
				ShowGUI:        showGUI,
				ServerWorkdir:  serverWorkdir,
				Host:           remoteHost,
				Username:       username,
				Password:       password,
				ClientWorkdir:  root.conn.Workdir,
				ConnectTimeout: root.conn.Timeout,
			})
			if err != nil {
				return err
			}
			defer wb.Exit(context.Background())
			if err := root.applyLogging(wb); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "workbench listening on %s\n", wb.Addr())

			if scriptFile != "" {
				out, err := wb.RunScriptFile(ctx, scriptFile, "error")
				if err != nil {
					return err
				}
				if err := printResult(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			}
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&version, "release", "", "three digit Workbench release, e.g. 252 (defaults to config)")
	cmd.Flags().BoolVar(&showGUI, "gui", false, "show the Workbench user interface")
	cmd.Flags().StringVar(&serverWorkdir, "server-workdir", "", "server working directory (default: server temp dir)")
	cmd.Flags().StringVar(&remoteHost, "remote-host", "", "Windows machine to launch on (default: this machine)")
	cmd.Flags().StringVar(&username, "username", "", "user name on the remote host")
	cmd.Flags().StringVar(&passwordEnv, "password-env", "", "environment variable holding the remote password")
	cmd.Flags().StringVar(&scriptFile, "script", "", "script file to run once the server is up")
	return cmd
}
