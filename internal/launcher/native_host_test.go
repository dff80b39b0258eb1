//go:build linux

package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// fakeRunWB2 echoes the port variable behind the prefix it was given, then
// stays up like a real server.
const fakeRunWB2 = `#!/bin/sh
for last; do :; done
prefix=$(echo "$last" | sed -n "s/.*EnvironmentPrefix='\([0-9a-f]*\)'.*/\1/p")
echo "Workbench starting"
echo "ANSYS_FRAMEWORK_SERVER_PORT=${prefix}50123"
exec sleep 60
`

func installFakeWorkbench(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	bin := filepath.Join(root, "Framework", "bin", "Linux64")
	require.NoError(t, os.MkdirAll(bin, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "runwb2"), []byte(fakeRunWB2), 0o755))
	return root
}

func TestNativeLaunch_EndToEnd(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	t.Setenv("AWP_ROOT252", installFakeWorkbench(t))
	t.Setenv(PortVariable, "")

	la := New(WithPollInterval(20*time.Millisecond), WithDiscoveryTimeout(10*time.Second))
	port, err := la.Launch(context.Background(), Request{Version: "252"})
	require.NoError(t, err)
	assert.Equal(t, 50123, port)

	pid := la.Handle().PID
	require.Greater(t, pid, 0)
	require.NoError(t, unix.Kill(pid, 0))

	la.Exit(context.Background())
	require.Eventually(t, func() bool {
		return errors.Is(unix.Kill(pid, 0), unix.ESRCH)
	}, 5*time.Second, 20*time.Millisecond)
}

func TestNativeLaunch_SpawnFailure(t *testing.T) {
	t.Setenv("AWP_ROOT252", filepath.Join(t.TempDir(), "missing"))
	la := New()
	port, err := la.Launch(context.Background(), Request{Version: "252"})
	assert.ErrorIs(t, err, ErrLaunchFailed)
	assert.Zero(t, port)
}

func TestNativeHost_StdoutVariablesShadowEnvironment(t *testing.T) {
	t.Setenv("WB_TEST_VAR", "from-env")
	h := newNativeHost(zap.NewNop().Sugar())
	v, ok, err := h.Getenv(context.Background(), "WB_TEST_VAR")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from-env", v)

	_, err = h.Spawn(context.Background(), "/bin/sh", []string{"-c", "echo WB_TEST_VAR=from-child; echo not a var; echo 9X=bad"})
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		v, _, _ := h.Getenv(context.Background(), "WB_TEST_VAR")
		return v == "from-child"
	}, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, h.Close())
	_, ok, _ = h.Getenv(context.Background(), "9X")
	assert.False(t, ok)
}
