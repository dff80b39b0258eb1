package launcher

import (
	"path"
	"strings"
)

const (
	// RootVariablePrefix plus the version names the install root variable.
	RootVariablePrefix = "AWP_ROOT"
	// PortVariable is published by the server as <prefix><port>.
	PortVariable = "ANSYS_FRAMEWORK_SERVER_PORT"
)

// DefaultInstallRoot is where a release installs when AWP_ROOT<version> is
// not set on the host.
func DefaultInstallRoot(goos, version string) string {
	if goos == "windows" {
		return "C:/Program Files/ANSYS Inc/v" + version
	}
	return "/usr/ansys_inc/v" + version
}

// BuildCommand returns the executable and arguments that start the server
// under root and make it publish its port behind prefix.
func BuildCommand(goos, root string, req Request, prefix string) (string, []string) {
	root = strings.ReplaceAll(root, `\`, "/")
	exe := path.Join(root, "Framework", "bin", "Linux64", "runwb2")
	if goos == "windows" {
		exe = path.Join(root, "Framework", "bin", "Win64", "RunWB2.exe")
	}

	var args []string
	if req.ShowGUI {
		args = append(args, "-I")
	} else {
		args = append(args, "--start-and-wait", "-nowindow")
	}

	directive := "StartServer(EnvironmentPrefix='" + prefix + "'"
	if req.ServerWorkdir != "" {
		// forward slashes survive command line quoting on every host
		directive += ",WorkingDirectory='" + strings.ReplaceAll(req.ServerWorkdir, `\`, "/") + "'"
	}
	directive += ")"
	return exe, append(args, "-E", directive)
}

// CommandLine joins exe and args into one string, quoting elements that
// contain blanks.
func CommandLine(exe string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, p := range append([]string{exe}, args...) {
		if strings.ContainsAny(p, " \t") {
			p = `"` + p + `"`
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, " ")
}
