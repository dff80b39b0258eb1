package session_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
	"github.com/antonkrylov/wbrunner/internal/exampledata"
	"github.com/antonkrylov/wbrunner/internal/logbridge"
	"github.com/antonkrylov/wbrunner/internal/session"
	"github.com/antonkrylov/wbrunner/internal/stubserver"
)

// fakeService lets a test script each call of the service.
type fakeService struct {
	workbenchv0.UnimplementedWorkbenchServiceServer

	runScript func(*workbenchv0.RunScriptRequest, grpc.ServerStreamingServer[workbenchv0.RunScriptResponse]) error
	download  func(*workbenchv0.DownloadFileRequest, grpc.ServerStreamingServer[workbenchv0.DownloadFileResponse]) error

	mu       sync.Mutex
	uploads  []string
	contents map[string]string
	reject   map[string]string
}

func (f *fakeService) RunScript(req *workbenchv0.RunScriptRequest, stream grpc.ServerStreamingServer[workbenchv0.RunScriptResponse]) error {
	return f.runScript(req, stream)
}

func (f *fakeService) DownloadFile(req *workbenchv0.DownloadFileRequest, stream grpc.ServerStreamingServer[workbenchv0.DownloadFileResponse]) error {
	return f.download(req, stream)
}

func (f *fakeService) UploadFile(stream grpc.ClientStreamingServer[workbenchv0.UploadFileRequest, workbenchv0.UploadFileResponse]) error {
	first, err := stream.Recv()
	if err != nil {
		return err
	}
	var body bytes.Buffer
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		body.Write(msg.GetFileContent())
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	name := first.GetFileName()
	f.uploads = append(f.uploads, name)
	if msg, ok := f.reject[name]; ok {
		return stream.SendAndClose(&workbenchv0.UploadFileResponse{Error: msg})
	}
	if f.contents == nil {
		f.contents = map[string]string{}
	}
	f.contents[name] = body.String()
	return stream.SendAndClose(&workbenchv0.UploadFileResponse{FileName: name})
}

func (f *fakeService) uploaded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploads...)
}

func (f *fakeService) content(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contents[name]
}

func serveFake(t *testing.T, svc workbenchv0.WorkbenchServiceServer) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := grpc.NewServer()
	workbenchv0.RegisterWorkbenchServiceServer(srv, svc)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	return lis.Addr().(*net.TCPAddr).Port
}

func serveStub(t *testing.T, root string, scripts stubserver.ScriptHandler) int {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	srv, err := stubserver.New(stubserver.Config{WorkspaceRoot: root, Scripts: scripts})
	require.NoError(t, err)
	require.NoError(t, srv.Start(ctx))
	t.Cleanup(srv.Stop)
	return srv.Port()
}

// connect returns a connected session writing console output to the
// returned buffer.
func connect(t *testing.T, workdir string, port int, opts ...session.Option) (*session.Session, *bytes.Buffer) {
	t.Helper()
	var console bytes.Buffer
	bridge := logbridge.New(logbridge.WithConsoleOutput(zapcore.AddSync(&console)))
	opts = append([]session.Option{
		session.WithBridge(bridge),
		session.WithProgressOutput(io.Discard),
	}, opts...)
	s := session.New(workdir, "127.0.0.1", port, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Connect(ctx))
	t.Cleanup(func() { _ = s.Disconnect() })
	return s, &console
}

func sendResult(stream grpc.ServerStreamingServer[workbenchv0.RunScriptResponse], res *workbenchv0.ScriptResult) error {
	return stream.Send(&workbenchv0.RunScriptResponse{Result: res})
}

func TestConnectLifecycle(t *testing.T) {
	port := serveStub(t, t.TempDir(), nil)
	s, _ := connect(t, t.TempDir(), port)

	ctx := context.Background()
	require.True(t, s.IsConnected())
	require.NoError(t, s.Connect(ctx), "connect while connected is a no-op")

	require.NoError(t, s.Disconnect())
	require.False(t, s.IsConnected())
	require.NoError(t, s.Disconnect(), "disconnect while disconnected is a no-op")

	require.ErrorIs(t, s.Connect(ctx), session.ErrSessionClosed)
}

func TestDataOperationsRequireConnection(t *testing.T) {
	var console bytes.Buffer
	bridge := logbridge.New(logbridge.WithConsoleOutput(zapcore.AddSync(&console)))
	s := session.New(t.TempDir(), "127.0.0.1", 1, session.WithBridge(bridge))
	ctx := context.Background()

	_, err := s.RunScript(ctx, "x", "error")
	require.ErrorIs(t, err, session.ErrNotConnected)
	_, err = s.Upload(ctx, []string{"a.txt"}, false)
	require.ErrorIs(t, err, session.ErrNotConnected)
	_, err = s.Download(ctx, "a.txt", session.DownloadOptions{})
	require.ErrorIs(t, err, session.ErrNotConnected)
	_, err = s.RunScriptFile(ctx, "missing.py", "error")
	require.ErrorIs(t, err, session.ErrNotConnected)

	assert.Equal(t, 4, strings.Count(console.String(), "ERROR: "+session.ErrNotConnected.Error()))
}

func TestRunScript_DecodesResult(t *testing.T) {
	gotLevel := make(chan workbenchv0.LogLevel, 1)
	port := serveFake(t, &fakeService{
		runScript: func(req *workbenchv0.RunScriptRequest, stream grpc.ServerStreamingServer[workbenchv0.RunScriptResponse]) error {
			gotLevel <- req.GetLogLevel()
			// an empty frame carries neither log nor result and is skipped
			if err := stream.Send(&workbenchv0.RunScriptResponse{}); err != nil {
				return err
			}
			return sendResult(stream, &workbenchv0.ScriptResult{Result: `{"x":1}`})
		},
	})
	s, _ := connect(t, t.TempDir(), port)

	out, err := s.RunScript(context.Background(), "wb_script_result=json.dumps({'x':1})", "Warn")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": float64(1)}, out)
	assert.Equal(t, workbenchv0.LogLevel_LOG_WARNING, <-gotLevel)
}

func TestRunScript_ErrorResult(t *testing.T) {
	port := serveFake(t, &fakeService{
		runScript: func(_ *workbenchv0.RunScriptRequest, stream grpc.ServerStreamingServer[workbenchv0.RunScriptResponse]) error {
			if err := sendResult(stream, &workbenchv0.ScriptResult{Error: "boom"}); err != nil {
				return err
			}
			// a second terminal message must be ignored
			return sendResult(stream, &workbenchv0.ScriptResult{Result: `1`})
		},
	})
	s, console := connect(t, t.TempDir(), port)

	out, err := s.RunScript(context.Background(), "raise", "error")
	assert.Nil(t, out)
	var scriptErr *session.ScriptError
	require.ErrorAs(t, err, &scriptErr)
	assert.Equal(t, "boom", scriptErr.Message)
	assert.Contains(t, console.String(), "ERROR: error when running the script: boom")
}

func TestRunScript_NoResult(t *testing.T) {
	port := serveFake(t, &fakeService{
		runScript: func(_ *workbenchv0.RunScriptRequest, stream grpc.ServerStreamingServer[workbenchv0.RunScriptResponse]) error {
			return nil
		},
	})
	s, _ := connect(t, t.TempDir(), port)

	out, err := s.RunScript(context.Background(), "pass", "error")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestRunScript_ForwardsLogsInOrder(t *testing.T) {
	port := serveFake(t, &fakeService{
		runScript: func(_ *workbenchv0.RunScriptRequest, stream grpc.ServerStreamingServer[workbenchv0.RunScriptResponse]) error {
			batches := [][]*workbenchv0.LogMessage{
				{{Level: workbenchv0.LogLevel_LOG_INFO, Message: "srv-1"}, {Level: workbenchv0.LogLevel_LOG_WARNING, Message: "srv-2"}},
				{{Level: workbenchv0.LogLevel(42), Message: "srv-dropped"}, {Level: workbenchv0.LogLevel_LOG_FATAL, Message: "srv-3"}},
			}
			for _, b := range batches {
				if err := stream.Send(&workbenchv0.RunScriptResponse{Log: &workbenchv0.Log{Messages: b}}); err != nil {
					return err
				}
			}
			return sendResult(stream, &workbenchv0.ScriptResult{Result: `"done"`})
		},
	})
	s, console := connect(t, t.TempDir(), port)
	require.NoError(t, s.SetConsoleLogLevel("debug"))

	out, err := s.RunScript(context.Background(), "x", "debug")
	require.NoError(t, err)
	assert.Equal(t, "done", out)

	var server []string
	for _, line := range strings.Split(console.String(), "\n") {
		if strings.Contains(line, "srv-") {
			server = append(server, line)
		}
	}
	assert.Equal(t, []string{"INFO: srv-1", "WARNING: srv-2", "CRITICAL: srv-3"}, server)
}

func TestRunScriptFile_StripsBOM(t *testing.T) {
	got := make(chan string, 1)
	port := serveStub(t, t.TempDir(), func(_ context.Context, req *workbenchv0.RunScriptRequest, send func(*workbenchv0.RunScriptResponse) error) error {
		got <- req.GetContent()
		return send(&workbenchv0.RunScriptResponse{Result: &workbenchv0.ScriptResult{Result: `true`}})
	})
	workdir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workdir, "run.py"), append([]byte{0xEF, 0xBB, 0xBF}, "print('hi')\n"...), 0o644))
	s, _ := connect(t, workdir, port)

	out, err := s.RunScriptFile(context.Background(), "run.py", "error")
	require.NoError(t, err)
	assert.Equal(t, true, out)
	assert.Equal(t, "print('hi')\n", <-got)
}

func TestRunScriptFile_AbsolutePath(t *testing.T) {
	got := make(chan string, 1)
	port := serveStub(t, t.TempDir(), func(_ context.Context, req *workbenchv0.RunScriptRequest, send func(*workbenchv0.RunScriptResponse) error) error {
		got <- req.GetContent()
		return send(&workbenchv0.RunScriptResponse{Result: &workbenchv0.ScriptResult{Result: `1`}})
	})
	script := filepath.Join(t.TempDir(), "elsewhere.py")
	require.NoError(t, os.WriteFile(script, []byte("print(2)"), 0o644))
	s, _ := connect(t, t.TempDir(), port)

	_, err := s.RunScriptFile(context.Background(), script, "error")
	require.NoError(t, err)
	assert.Equal(t, "print(2)", <-got)
}

func TestUpload_ExpandsGlob(t *testing.T) {
	svc := &fakeService{}
	port := serveFake(t, svc)
	workdir := t.TempDir()
	for _, name := range []string{"file_a.txt", "file_b.txt", "other.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(workdir, name), []byte(name), 0o644))
	}
	s, _ := connect(t, workdir, port)

	stored, err := s.Upload(context.Background(), []string{"file*"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"file_a.txt", "file_b.txt"}, stored)
	assert.Equal(t, []string{"file_a.txt", "file_b.txt"}, svc.uploaded())
	assert.Equal(t, "file_b.txt", svc.content("file_b.txt"))
}

func TestUpload_SkipsMissing(t *testing.T) {
	svc := &fakeService{}
	port := serveFake(t, svc)
	workdir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workdir, "here.txt"), []byte("x"), 0o644))
	s, console := connect(t, workdir, port)

	stored, err := s.Upload(context.Background(), []string{"here.txt", "gone.txt"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"here.txt"}, stored)
	assert.Equal(t, []string{"here.txt"}, svc.uploaded())
	assert.Contains(t, console.String(), "WARNING: the following files do not exist and are skipped: ")
	assert.Contains(t, console.String(), filepath.Join(workdir, "gone.txt"))
}

func TestUpload_ServerRejectionContinues(t *testing.T) {
	svc := &fakeService{reject: map[string]string{"a.txt": "disk full"}}
	port := serveFake(t, svc)
	workdir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(workdir, name), []byte(name), 0o644))
	}
	s, console := connect(t, workdir, port)

	stored, err := s.Upload(context.Background(), []string{"a.txt", "b.txt"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, stored)
	assert.Equal(t, []string{"a.txt", "b.txt"}, svc.uploaded())
	assert.Contains(t, console.String(), "ERROR: error during file upload: disk full")
}

func TestUpload_ChunksLargeFile(t *testing.T) {
	root := t.TempDir()
	port := serveStub(t, root, nil)
	workdir := t.TempDir()
	big := bytes.Repeat([]byte("0123456789abcdef"), session.ChunkSize/8)
	require.NoError(t, os.WriteFile(filepath.Join(workdir, "big.bin"), big, 0o644))
	s, _ := connect(t, workdir, port)

	stored, err := s.Upload(context.Background(), []string{filepath.Join(workdir, "big.bin")}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"big.bin"}, stored)
	got, err := os.ReadFile(filepath.Join(root, "big.bin"))
	require.NoError(t, err)
	assert.Equal(t, big, got)
}

func TestDownload_ArchiveGetsZipSuffix(t *testing.T) {
	port := serveFake(t, &fakeService{
		download: func(_ *workbenchv0.DownloadFileRequest, stream grpc.ServerStreamingServer[workbenchv0.DownloadFileResponse]) error {
			if err := stream.Send(&workbenchv0.DownloadFileResponse{FileInfo: &workbenchv0.FileInfo{IsArchive: true, FileSize: 3}}); err != nil {
				return err
			}
			return stream.Send(&workbenchv0.DownloadFileResponse{FileContent: []byte("zip")})
		},
	})
	workdir := t.TempDir()
	s, _ := connect(t, workdir, port)

	name, err := s.Download(context.Background(), "results", session.DownloadOptions{ShowProgress: true})
	require.NoError(t, err)
	assert.Equal(t, "results.zip", name)
	got, err := os.ReadFile(filepath.Join(workdir, "results.zip"))
	require.NoError(t, err)
	assert.Equal(t, "zip", string(got))
	_, err = os.Stat(filepath.Join(workdir, "results"))
	assert.True(t, os.IsNotExist(err))
}

func TestDownload_ReplacesStaleFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "out.csv"), []byte("fresh"), 0o644))
	port := serveStub(t, root, nil)
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "out.csv"), []byte("stale content from last run"), 0o644))
	s, _ := connect(t, t.TempDir(), port)

	name, err := s.Download(context.Background(), "out.csv", session.DownloadOptions{TargetDir: target})
	require.NoError(t, err)
	assert.Equal(t, "out.csv", name)
	got, err := os.ReadFile(filepath.Join(target, "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(got))
}

func TestDownload_WildcardsBecomeUnderscores(t *testing.T) {
	root := t.TempDir()
	for _, n := range []string{"r1.txt", "r2.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, n), []byte(n), 0o644))
	}
	port := serveStub(t, root, nil)
	workdir := t.TempDir()
	s, _ := connect(t, workdir, port)

	name, err := s.Download(context.Background(), "r?.txt", session.DownloadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "r_.txt.zip", name)
	_, err = os.Stat(filepath.Join(workdir, "r_.txt.zip"))
	require.NoError(t, err)
}

func TestDownload_ErrorRemovesPartialFile(t *testing.T) {
	port := serveFake(t, &fakeService{
		download: func(_ *workbenchv0.DownloadFileRequest, stream grpc.ServerStreamingServer[workbenchv0.DownloadFileResponse]) error {
			for _, msg := range []*workbenchv0.DownloadFileResponse{
				{FileInfo: &workbenchv0.FileInfo{FileSize: 10}},
				{FileContent: []byte("part")},
				{Error: "lost the file"},
				{FileContent: []byte("never")},
			} {
				if err := stream.Send(msg); err != nil {
					return err
				}
			}
			return nil
		},
	})
	workdir := t.TempDir()
	s, console := connect(t, workdir, port)

	name, err := s.Download(context.Background(), "model.wbpj", session.DownloadOptions{})
	assert.Empty(t, name)
	var transferErr *session.TransferError
	require.ErrorAs(t, err, &transferErr)
	assert.Equal(t, "lost the file", transferErr.Message)
	_, statErr := os.Stat(filepath.Join(workdir, "model.wbpj"))
	assert.True(t, os.IsNotExist(statErr))
	assert.Contains(t, console.String(), "ERROR: error during file download: lost the file")
}

func TestDownload_RepeatedFileInfoClosesPreviousBar(t *testing.T) {
	port := serveFake(t, &fakeService{
		download: func(_ *workbenchv0.DownloadFileRequest, stream grpc.ServerStreamingServer[workbenchv0.DownloadFileResponse]) error {
			for _, msg := range []*workbenchv0.DownloadFileResponse{
				{FileInfo: &workbenchv0.FileInfo{IsArchive: true, FileSize: 10}},
				{FileInfo: &workbenchv0.FileInfo{IsArchive: true, FileSize: 4}},
				{FileContent: []byte("abcd")},
			} {
				if err := stream.Send(msg); err != nil {
					return err
				}
			}
			return nil
		},
	})
	workdir := t.TempDir()
	var bars bytes.Buffer
	s, _ := connect(t, workdir, port, session.WithProgressOutput(&bars))

	name, err := s.Download(context.Background(), "out", session.DownloadOptions{ShowProgress: true})
	require.NoError(t, err)
	assert.Equal(t, "out.zip", name)
	got, err := os.ReadFile(filepath.Join(workdir, "out.zip"))
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(got))
	assert.Equal(t, "Downloading out.zip: 0 B/10 B\nDownloading out.zip: 4 B/4 B\n", bars.String())
}

func TestStartFluentServer_DownloadsServerInfo(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "server_info.txt"), []byte("127.0.0.1:5000 token"), 0o644))
	script := make(chan string, 1)
	port := serveStub(t, root, func(_ context.Context, req *workbenchv0.RunScriptRequest, send func(*workbenchv0.RunScriptResponse) error) error {
		script <- req.GetContent()
		return send(&workbenchv0.RunScriptResponse{Result: &workbenchv0.ScriptResult{Result: `"server_info.txt"`}})
	})
	workdir := t.TempDir()
	s, _ := connect(t, workdir, port)

	local, err := s.StartFluentServer(context.Background(), "FFF")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(workdir, "server_info.txt"), local)
	assert.Contains(t, <-script, `LaunchFluentServerOnSystem(SystemName="FFF")`)
	got, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:5000 token", string(got))
}

func TestStartFluentServer_AbsoluteServerInfoPath(t *testing.T) {
	info := filepath.Join(t.TempDir(), "fluent", "server_info.txt")
	requested := make(chan string, 1)
	port := serveFake(t, &fakeService{
		runScript: func(_ *workbenchv0.RunScriptRequest, stream grpc.ServerStreamingServer[workbenchv0.RunScriptResponse]) error {
			return sendResult(stream, &workbenchv0.ScriptResult{Result: strconv.Quote(info)})
		},
		download: func(req *workbenchv0.DownloadFileRequest, stream grpc.ServerStreamingServer[workbenchv0.DownloadFileResponse]) error {
			requested <- req.GetFileName()
			return stream.Send(&workbenchv0.DownloadFileResponse{FileContent: []byte("127.0.0.1:5001 token")})
		},
	})
	workdir := t.TempDir()
	s, _ := connect(t, workdir, port)

	local, err := s.StartFluentServer(context.Background(), "FFF")
	require.NoError(t, err)
	assert.Equal(t, info, local)
	assert.Equal(t, info, <-requested)
	got, err := os.ReadFile(info)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:5001 token", string(got))
}

func TestStartMechanicalServer_ReturnsPort(t *testing.T) {
	port := serveStub(t, t.TempDir(), func(_ context.Context, req *workbenchv0.RunScriptRequest, send func(*workbenchv0.RunScriptResponse) error) error {
		if !strings.Contains(req.GetContent(), "LaunchMechanicalServerOnSystem") {
			return send(&workbenchv0.RunScriptResponse{Result: &workbenchv0.ScriptResult{Error: "unexpected script"}})
		}
		return send(&workbenchv0.RunScriptResponse{Result: &workbenchv0.ScriptResult{Result: `10000`}})
	})
	s, _ := connect(t, t.TempDir(), port)

	out, err := s.StartMechanicalServer(context.Background(), "SYS")
	require.NoError(t, err)
	assert.Equal(t, float64(10000), out)
}

func TestUploadFromExampleRepo(t *testing.T) {
	examples := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pyworkbench/cooled-turbine-blade/wb/cooled_turbine_blade.wbpz" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("project"))
	}))
	defer examples.Close()

	root := t.TempDir()
	port := serveStub(t, root, nil)
	s, _ := connect(t, t.TempDir(), port, session.WithFetcher(exampledata.New(exampledata.WithBaseURL(examples.URL))))

	stored, err := s.UploadFromExampleRepo(context.Background(), "cooled-turbine-blade/wb/cooled_turbine_blade.wbpz", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"cooled_turbine_blade.wbpz"}, stored)
	got, err := os.ReadFile(filepath.Join(root, "cooled_turbine_blade.wbpz"))
	require.NoError(t, err)
	assert.Equal(t, "project", string(got))
}

func TestLogFileCapturesWhatConsoleHides(t *testing.T) {
	port := serveFake(t, &fakeService{
		runScript: func(_ *workbenchv0.RunScriptRequest, stream grpc.ServerStreamingServer[workbenchv0.RunScriptResponse]) error {
			return stream.Send(&workbenchv0.RunScriptResponse{Log: &workbenchv0.Log{Messages: []*workbenchv0.LogMessage{
				{Level: workbenchv0.LogLevel_LOG_INFO, Message: "meshing done"},
			}}})
		},
	})
	s, console := connect(t, t.TempDir(), port)
	require.NoError(t, s.SetConsoleLogLevel("error"))
	logPath := filepath.Join(t.TempDir(), "wb.log")
	require.NoError(t, s.SetLogFile(logPath))

	_, err := s.RunScript(context.Background(), "x", "info")
	require.NoError(t, err)
	require.NoError(t, s.ResetLogFile())

	assert.NotContains(t, console.String(), "meshing done")
	got, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(got), "INFO: meshing done")
}
