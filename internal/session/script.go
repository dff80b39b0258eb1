package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
	"github.com/antonkrylov/wbrunner/internal/logbridge"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RunScript sends body to the server and returns the decoded JSON value the
// script assigned to its result. Server log entries at or above level are
// forwarded to the bridge as they arrive. A script that finishes without a
// result yields (nil, nil); one that fails yields a *ScriptError.
func (s *Session) RunScript(ctx context.Context, body, level string) (any, error) {
	wb, err := s.stub()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := wb.RunScript(ctx, &workbenchv0.RunScriptRequest{
		Content:  body,
		LogLevel: logbridge.ServerLevel(level),
	})
	if err != nil {
		return nil, fmt.Errorf("run script: %w", err)
	}
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("run script: %w", err)
		}
		for _, entry := range resp.GetLog().GetMessages() {
			s.bridge.Dispatch(entry.GetLevel(), entry.GetMessage())
		}
		result := resp.GetResult()
		switch {
		case result.GetError() != "":
			s.log.Errorf("error when running the script: %s", result.GetError())
			return nil, &ScriptError{Message: result.GetError()}
		case result.GetResult() != "":
			var out any
			if err := json.Unmarshal([]byte(result.GetResult()), &out); err != nil {
				return nil, fmt.Errorf("decode script result: %w", err)
			}
			s.log.Info("the script has finished")
			return out, nil
		}
	}
}

// RunScriptFile runs the script stored at name under the working directory.
func (s *Session) RunScriptFile(ctx context.Context, name, level string) (any, error) {
	if _, err := s.stub(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.abs(name))
	if err != nil {
		return nil, err
	}
	return s.RunScript(ctx, string(bytes.TrimPrefix(raw, utf8BOM)), level)
}

// StartMechanicalServer starts PyMechanical for a system of the open project
// and returns the port it listens on.
func (s *Session) StartMechanicalServer(ctx context.Context, system string) (any, error) {
	return s.RunScript(ctx, launchScript("LaunchMechanicalServerOnSystem", "server_port", system), "error")
}

// StartSherlockServer starts PySherlock for a system of the open project and
// returns the port it listens on.
func (s *Session) StartSherlockServer(ctx context.Context, system string) (any, error) {
	return s.RunScript(ctx, launchScript("LaunchSherlockServerOnSystem", "server_port", system), "error")
}

// StartFluentServer starts PyFluent for a system of the open project,
// downloads the server info file it writes and returns its local path.
func (s *Session) StartFluentServer(ctx context.Context, system string) (string, error) {
	out, err := s.RunScript(ctx, launchScript("LaunchFluentServerOnSystem", "server_info_file", system), "error")
	if err != nil {
		return "", err
	}
	name, ok := out.(string)
	if !ok || name == "" {
		return "", fmt.Errorf("fluent server info: unexpected script result %v", out)
	}
	local := s.abs(name)
	if err := os.Remove(local); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if _, err := s.Download(ctx, name, DownloadOptions{}); err != nil {
		return "", err
	}
	return local, nil
}

func launchScript(fn, variable, system string) string {
	return fmt.Sprintf("import json\n%s=%s(SystemName=%q)\nwb_script_result=json.dumps(%s)\n", variable, fn, system, variable)
}
