package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/antonkrylov/wbrunner/internal/launcher"
)

func newDoctorCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Print local diagnostic information for troubleshooting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writeDiagnostics(cmd.OutOrStdout(), root)
			return nil
		},
	}
}

func writeDiagnostics(out io.Writer, root *rootOptions) {
	exe, _ := os.Executable()
	fmt.Fprintf(out, "wbrunner_executable=%s\n", strings.TrimSpace(exe))
	fmt.Fprintf(out, "platform=%s/%s\n", runtime.GOOS, runtime.GOARCH)

	var installs []string
	for _, kv := range os.Environ() {
		name, value, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, launcher.RootVariablePrefix) {
			installs = append(installs, name+"="+value)
		}
	}
	sort.Strings(installs)
	if len(installs) == 0 {
		fmt.Fprintf(out, "ansys_installations=none (no %s* variables set)\n", launcher.RootVariablePrefix)
	}
	for _, line := range installs {
		fmt.Fprintf(out, "ansys_installation=%s\n", line)
	}

	conn := root.conn
	fmt.Fprintf(out, "config_path=%s\n", conn.ConfigPath)
	if conn.Config == nil {
		fmt.Fprintln(out, "config_present=false")
	} else {
		fmt.Fprintln(out, "config_present=true")
		fmt.Fprintf(out, "current_context=%s\n", strings.TrimSpace(conn.Config.CurrentContext))
		names := make([]string, 0, len(conn.Config.Contexts))
		for k := range conn.Config.Contexts {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, name := range names {
			c := conn.Config.Contexts[name]
			if c == nil {
				continue
			}
			fmt.Fprintf(out, "context=%s host=%s port=%d release=%s timeout=%d\n",
				name, strings.TrimSpace(c.Host), c.Port, c.Release, c.TimeoutSeconds)
		}
	}
	fmt.Fprintf(out, "resolved_addr=%s\n", conn.Addr())
	fmt.Fprintf(out, "resolved_workdir=%s\n", conn.Workdir)
	fmt.Fprintf(out, "resolved_timeout=%s\n", conn.Timeout)
}
