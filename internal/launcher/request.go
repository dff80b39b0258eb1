package launcher

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidVersion       = errors.New("invalid Ansys version")
	ErrMissingCredentials   = errors.New("username and password must be specified to launch on a remote host")
	ErrRemoteUnsupported    = errors.New("launching on a remote host is not supported from this platform")
	ErrHostConnection       = errors.New("could not establish host connection")
	ErrLaunchFailed         = errors.New("workbench failed to launch on the host")
	ErrPortDiscoveryTimeout = errors.New("workbench service did not publish its port within the timeout")
	ErrAlreadyLaunched      = errors.New("launcher already owns a running server")
)

// MinVersion is the oldest release able to serve remote clients.
const MinVersion = 242

// Request describes one launch.
type Request struct {
	// Version is a three digit release such as "242".
	Version string
	ShowGUI bool
	// ServerWorkdir overrides the server's temporary file folder.
	ServerWorkdir string
	// Host is empty for the local machine.
	Host     string
	Username string
	Password string
}

// Validate reports configuration errors. It performs no I/O.
func (r Request) Validate() error {
	if !validVersion(r.Version) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, r.Version)
	}
	if r.Host != "" && !remoteSupported {
		return ErrRemoteUnsupported
	}
	if r.Host != "" && (r.Username == "" || r.Password == "") {
		return ErrMissingCredentials
	}
	return nil
}

func validVersion(v string) bool {
	if len(v) != 3 {
		return false
	}
	for _, c := range v {
		if c < '0' || c > '9' {
			return false
		}
	}
	if v[0] != '2' && v[0] != '3' {
		return false
	}
	if v[2] != '1' && v[2] != '2' {
		return false
	}
	n, _ := strconv.Atoi(v)
	return n >= MinVersion
}
