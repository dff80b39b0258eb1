package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cliconfig "github.com/antonkrylov/wbrunner/internal/cli/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Edit contexts in the wbrunner config file",
		// Editing must work even when the current context is broken.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}
	cmd.AddCommand(newSetContextCmd(root))
	cmd.AddCommand(newUseContextCmd(root))
	return cmd
}

func loadOrEmpty(path string) (*cliconfig.Config, error) {
	cfg, err := cliconfig.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &cliconfig.Config{}
	}
	if cfg.Contexts == nil {
		cfg.Contexts = map[string]*cliconfig.Context{}
	}
	return cfg, nil
}

func newSetContextCmd(root *rootOptions) *cobra.Command {
	var (
		release       string
		serverWorkdir string
		username      string
		passwordEnv   string
		showGUI       bool
		use           bool
	)
	cmd := &cobra.Command{
		Use:   "set-context NAME",
		Short: "Create or update a context from --host, --port, --workdir, --timeout and the flags below",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("context name is required")
			}
			cfg, err := loadOrEmpty(root.configPath)
			if err != nil {
				return err
			}
			ctx := cfg.Contexts[name]
			if ctx == nil {
				ctx = &cliconfig.Context{}
				cfg.Contexts[name] = ctx
			}

			flags := cmd.Flags()
			if flags.Changed("host") {
				ctx.Host = strings.TrimSpace(root.host)
			}
			if flags.Changed("port") {
				ctx.Port = root.port
			}
			if flags.Changed("workdir") {
				ctx.Workdir = strings.TrimSpace(root.workdir)
			}
			if flags.Changed("timeout") {
				ctx.TimeoutSeconds = int(root.timeout.Seconds())
			}
			if flags.Changed("release") {
				ctx.Release = strings.TrimSpace(release)
			}
			if flags.Changed("server-workdir") {
				ctx.ServerWorkdir = strings.TrimSpace(serverWorkdir)
			}
			if flags.Changed("username") {
				ctx.Username = strings.TrimSpace(username)
			}
			if flags.Changed("password-env") {
				ctx.PasswordEnv = strings.TrimSpace(passwordEnv)
			}
			if flags.Changed("show-gui") {
				ctx.ShowGUI = &showGUI
			}
			if use || cfg.CurrentContext == "" {
				cfg.CurrentContext = name
			}

			if err := cfg.Save(root.configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "context %s saved to %s\n", name, root.configPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&release, "release", "", "Ansys release to launch, for example 252")
	cmd.Flags().StringVar(&serverWorkdir, "server-workdir", "", "working directory of launched servers")
	cmd.Flags().StringVar(&username, "username", "", "account for remote launches")
	cmd.Flags().StringVar(&passwordEnv, "password-env", "", "environment variable holding the password")
	cmd.Flags().BoolVar(&showGUI, "show-gui", false, "launch Workbench with its GUI")
	cmd.Flags().BoolVar(&use, "use", false, "also make this the current context")
	return cmd
}

func newUseContextCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "use-context NAME",
		Short: "Set the current context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			cfg, err := loadOrEmpty(root.configPath)
			if err != nil {
				return err
			}
			if _, ok := cfg.Contexts[name]; !ok {
				return fmt.Errorf("%w: %s", cliconfig.ErrContextNotFound, name)
			}
			cfg.CurrentContext = name
			if err := cfg.Save(root.configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "switched to context %s\n", name)
			return nil
		},
	}
}
