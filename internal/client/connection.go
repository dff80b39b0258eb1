package client

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	cliconfig "github.com/antonkrylov/wbrunner/internal/cli/config"
)

const (
	DefaultHost    = "localhost"
	DefaultTimeout = 15 * time.Second
)

// Connection is where a client session should point.
type Connection struct {
	Host        string
	Port        int
	Workdir     string
	Timeout     time.Duration
	ConfigPath  string
	ContextName string
	Config      *cliconfig.Config
	Context     *cliconfig.Context
}

// Addr is host:port, suitable for dialing.
func (c *Connection) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ConnectionFlags carries explicit values; zero values mean "not set".
type ConnectionFlags struct {
	ConfigPath  string
	ContextName string
	Host        string
	Port        int
	Workdir     string
	Timeout     time.Duration
}

// ResolveConnection applies, in order of precedence:
// 1) flags
// 2) config file context
// 3) environment (WBRUNNER_HOST, WBRUNNER_PORT, WBRUNNER_WORKDIR)
// 4) defaults (localhost, temp dir, 15s)
//
// A port is only required when requirePort is set; launch flows discover it.
func ResolveConnection(flags ConnectionFlags, requirePort bool) (*Connection, error) {
	conn := &Connection{
		ConfigPath:  flags.ConfigPath,
		ContextName: flags.ContextName,
		Host:        strings.TrimSpace(flags.Host),
		Port:        flags.Port,
		Workdir:     strings.TrimSpace(flags.Workdir),
		Timeout:     flags.Timeout,
	}

	if conn.ConfigPath != "" {
		cfg, err := cliconfig.Load(conn.ConfigPath)
		if err != nil {
			return nil, err
		}
		conn.Config = cfg
	}

	if conn.Config != nil {
		ctx, name, err := conn.Config.Resolve(conn.ContextName)
		if err != nil {
			return nil, err
		}
		conn.Context = ctx
		conn.ContextName = name
	}

	if c := conn.Context; c != nil {
		if conn.Host == "" {
			conn.Host = c.Host
		}
		if conn.Port == 0 {
			conn.Port = c.Port
		}
		if conn.Workdir == "" {
			conn.Workdir = c.Workdir
		}
		if conn.Timeout == 0 && c.TimeoutSeconds > 0 {
			conn.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
		}
	}

	if conn.Host == "" {
		conn.Host = os.Getenv("WBRUNNER_HOST")
	}
	if conn.Port == 0 {
		if raw := strings.TrimSpace(os.Getenv("WBRUNNER_PORT")); raw != "" {
			port, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("WBRUNNER_PORT: %w", err)
			}
			conn.Port = port
		}
	}
	if conn.Workdir == "" {
		conn.Workdir = os.Getenv("WBRUNNER_WORKDIR")
	}

	if conn.Host == "" {
		conn.Host = DefaultHost
	}
	if conn.Workdir == "" {
		conn.Workdir = os.TempDir()
	}
	if conn.Timeout == 0 {
		conn.Timeout = DefaultTimeout
	}

	if conn.Port < 0 || conn.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", conn.Port)
	}
	if requirePort && conn.Port == 0 {
		return nil, fmt.Errorf("server port is required")
	}
	return conn, nil
}
