package stubserver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
	"github.com/antonkrylov/wbrunner/internal/archive"
)

type workbenchService struct {
	workbenchv0.UnimplementedWorkbenchServiceServer

	root      string
	scripts   ScriptHandler
	chunkSize int
	log       *zap.SugaredLogger
}

func (s *workbenchService) RunScript(req *workbenchv0.RunScriptRequest, stream grpc.ServerStreamingServer[workbenchv0.RunScriptResponse]) error {
	if s.scripts == nil {
		return stream.Send(&workbenchv0.RunScriptResponse{
			Result: &workbenchv0.ScriptResult{Error: "no script engine is attached to this server"},
		})
	}
	return s.scripts(stream.Context(), req, stream.Send)
}

// UploadFile answers problems in the response body rather than with a gRPC
// status, which is how the real server reports them.
func (s *workbenchService) UploadFile(stream grpc.ClientStreamingServer[workbenchv0.UploadFileRequest, workbenchv0.UploadFileResponse]) error {
	first, err := stream.Recv()
	if errors.Is(err, io.EOF) {
		return stream.SendAndClose(&workbenchv0.UploadFileResponse{Error: "empty upload stream"})
	}
	if err != nil {
		return err
	}
	if _, ok := first.GetContent().(*workbenchv0.UploadFileRequest_FileName); !ok {
		return stream.SendAndClose(&workbenchv0.UploadFileResponse{Error: "first message must carry the file name"})
	}
	name := filepath.Base(filepath.Clean(first.GetFileName()))
	path, err := s.resolve(name)
	if err != nil {
		return stream.SendAndClose(&workbenchv0.UploadFileResponse{Error: err.Error()})
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = tmp.Close()
			return err
		}
		if _, err := tmp.Write(msg.GetFileContent()); err != nil {
			_ = tmp.Close()
			return stream.SendAndClose(&workbenchv0.UploadFileResponse{Error: err.Error()})
		}
	}
	if err := tmp.Close(); err != nil {
		return stream.SendAndClose(&workbenchv0.UploadFileResponse{Error: err.Error()})
	}
	if err := os.Rename(tmpName, path); err != nil {
		return stream.SendAndClose(&workbenchv0.UploadFileResponse{Error: err.Error()})
	}
	s.log.Infow("stored upload", "file", name)
	return stream.SendAndClose(&workbenchv0.UploadFileResponse{FileName: name})
}

// DownloadFile streams one file, or a zip of every match when the pattern
// selects several.
func (s *workbenchService) DownloadFile(req *workbenchv0.DownloadFileRequest, stream grpc.ServerStreamingServer[workbenchv0.DownloadFileResponse]) error {
	matches, err := s.match(req.GetFileName())
	if err != nil {
		return stream.Send(&workbenchv0.DownloadFileResponse{Error: err.Error()})
	}
	if len(matches) == 0 {
		return stream.Send(&workbenchv0.DownloadFileResponse{Error: fmt.Sprintf("no file matches %q", req.GetFileName())})
	}

	path := matches[0]
	isArchive := len(matches) > 1
	if isArchive {
		bundle, err := s.bundle(matches)
		if err != nil {
			return stream.Send(&workbenchv0.DownloadFileResponse{Error: err.Error()})
		}
		defer os.Remove(bundle)
		path = bundle
	}

	f, err := os.Open(path)
	if err != nil {
		return stream.Send(&workbenchv0.DownloadFileResponse{Error: err.Error()})
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return stream.Send(&workbenchv0.DownloadFileResponse{Error: err.Error()})
	}
	if err := stream.Send(&workbenchv0.DownloadFileResponse{
		FileInfo: &workbenchv0.FileInfo{IsArchive: isArchive, FileSize: info.Size()},
	}); err != nil {
		return err
	}

	buf := make([]byte, s.chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if sendErr := stream.Send(&workbenchv0.DownloadFileResponse{FileContent: buf[:n]}); sendErr != nil {
				return sendErr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return stream.Send(&workbenchv0.DownloadFileResponse{Error: err.Error()})
		}
	}
}

func (s *workbenchService) match(pattern string) ([]string, error) {
	raw := strings.TrimSpace(pattern)
	if raw == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if !strings.ContainsAny(raw, "*?") {
		path, err := s.resolve(raw)
		if err != nil {
			return nil, err
		}
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			return nil, nil
		}
		return []string{path}, nil
	}
	if _, err := s.resolve(raw); err != nil {
		return nil, err
	}
	found, err := filepath.Glob(filepath.Join(s.root, raw))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, p := range found {
		if info, err := os.Stat(p); err == nil && !info.IsDir() && !strings.HasPrefix(filepath.Base(p), ".upload-") {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files, nil
}

func (s *workbenchService) bundle(files []string) (string, error) {
	tmp, err := os.CreateTemp("", "wb-download-*.zip")
	if err != nil {
		return "", err
	}
	if err := archive.Zip(tmp, s.root, files); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func (s *workbenchService) resolve(requestPath string) (string, error) {
	raw := strings.TrimSpace(requestPath)
	if raw == "" {
		return "", fmt.Errorf("path is required")
	}
	root := filepath.Clean(s.root)
	var abs string
	if filepath.IsAbs(raw) {
		abs = filepath.Clean(raw)
	} else {
		abs = filepath.Join(root, raw)
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(rel, ".."+string(os.PathSeparator)) || rel == ".." {
		return "", fmt.Errorf("path %q escapes the server working directory", raw)
	}
	return abs, nil
}
