package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	workbenchv0 "github.com/antonkrylov/wbrunner/gen/go/ansys/api/workbench/v0"
	"github.com/antonkrylov/wbrunner/internal/progress"
)

// ChunkSize is the size of each file_content frame of an upload.
const ChunkSize = 64 * 1024

var wildcardReplacer = strings.NewReplacer("*", "_", "?", "_")

type DownloadOptions struct {
	ShowProgress bool
	// TargetDir defaults to the session working directory.
	TargetDir string
}

// Upload sends each file named by paths to the server working directory and
// returns the names the server stored them under. Entries with * or ? are
// expanded as globs relative to the working directory. Missing files are
// reported in one warning and skipped; a file the server rejects is logged
// and the rest are still sent. Only transport failures are returned.
func (s *Session) Upload(ctx context.Context, paths []string, showProgress bool) ([]string, error) {
	wb, err := s.stub()
	if err != nil {
		return nil, err
	}
	existing, missing, err := s.expand(paths)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		s.log.Warnf("the following files do not exist and are skipped: %s", strings.Join(missing, ", "))
	}

	var (
		stored []string
		errs   error
	)
	for _, path := range existing {
		s.log.Infof("uploading file %s", path)
		resp, err := s.uploadOne(ctx, wb, path, showProgress)
		if err != nil {
			s.log.Errorf("error during file upload of %s: %v", path, err)
			errs = multierr.Append(errs, fmt.Errorf("upload %s: %w", path, err))
			continue
		}
		if resp.GetError() != "" {
			s.log.Errorf("error during file upload: %s", resp.GetError())
			continue
		}
		s.log.Infof("a file is uploaded to the server with the name: %s", resp.GetFileName())
		stored = append(stored, resp.GetFileName())
	}
	return stored, errs
}

func (s *Session) expand(paths []string) (existing, missing []string, err error) {
	var requested []string
	for _, p := range paths {
		if !strings.ContainsAny(p, "*?") {
			requested = append(requested, p)
			continue
		}
		matches, err := filepath.Glob(s.abs(p))
		if err != nil {
			return nil, nil, fmt.Errorf("expand %q: %w", p, err)
		}
		requested = append(requested, matches...)
	}
	for _, p := range requested {
		p = s.abs(p)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			existing = append(existing, p)
		} else {
			missing = append(missing, p)
		}
	}
	return existing, missing, nil
}

func (s *Session) abs(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Workdir, p)
}

func (s *Session) uploadOne(ctx context.Context, wb workbenchv0.WorkbenchServiceClient, path string, showProgress bool) (*workbenchv0.UploadFileResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stream, err := wb.UploadFile(ctx)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	if err := stream.Send(&workbenchv0.UploadFileRequest{Content: &workbenchv0.UploadFileRequest_FileName{FileName: name}}); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	meter := s.meter(showProgress, "Uploading "+name, info.Size())
	defer meter.Close()

	buf := make([]byte, ChunkSize)
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			if err := stream.Send(&workbenchv0.UploadFileRequest{Content: &workbenchv0.UploadFileRequest_FileContent{FileContent: buf[:n]}}); err != nil {
				// io.EOF means the server ended the stream; its answer comes
				// from CloseAndRecv.
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, err
			}
			meter.Add(n)
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, readErr
		}
	}
	return stream.CloseAndRecv()
}

// UploadFromExampleRepo fetches relPath from the example-data repository into
// the working directory and uploads it.
func (s *Session) UploadFromExampleRepo(ctx context.Context, relPath string, showProgress bool) ([]string, error) {
	if _, err := s.stub(); err != nil {
		return nil, err
	}
	name, err := s.fetcher.Download(ctx, relPath, s.Workdir)
	if err != nil {
		return nil, err
	}
	return s.Upload(ctx, []string{name}, showProgress)
}

// Download fetches the server file or files matching pattern. Wildcards in
// the local name become underscores, and a multi-file match arrives as a zip
// whose name gains a .zip suffix. It returns the local file name relative to
// the target directory. A download the server aborts leaves no partial file
// and yields a *TransferError.
func (s *Session) Download(ctx context.Context, pattern string, opts DownloadOptions) (string, error) {
	wb, err := s.stub()
	if err != nil {
		return "", err
	}
	dir := opts.TargetDir
	if dir == "" {
		dir = s.Workdir
	}
	name := wildcardReplacer.Replace(pattern)
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stream, err := wb.DownloadFile(ctx, &workbenchv0.DownloadFileRequest{FileName: pattern})
	if err != nil {
		return "", fmt.Errorf("download %s: %w", pattern, err)
	}

	var (
		out     *os.File
		archive bool
		meter   = progress.Nop
	)
	defer func() {
		meter.Close()
		if out != nil {
			_ = out.Close()
		}
	}()
	abort := func(cause error) (string, error) {
		if out != nil {
			_ = out.Close()
			out = nil
			_ = os.Remove(path)
		}
		return "", cause
	}

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.log.Errorf("error during file download: %v", err)
			return abort(fmt.Errorf("download %s: %w", pattern, err))
		}
		if msg := resp.GetError(); msg != "" {
			s.log.Errorf("error during file download: %s", msg)
			return abort(&TransferError{File: name, Message: msg})
		}
		if info := resp.GetFileInfo(); info != nil {
			if info.GetIsArchive() && !archive {
				archive = true
				name += ".zip"
				path += ".zip"
			}
			if info.GetFileSize() > 0 {
				// A repeated file info restarts the bar.
				meter.Close()
				meter = s.meter(opts.ShowProgress, "Downloading "+name, info.GetFileSize())
			}
		}
		chunk := resp.GetFileContent()
		if len(chunk) == 0 {
			continue
		}
		if out == nil {
			if out, err = s.create(path); err != nil {
				return abort(err)
			}
		}
		if _, err := out.Write(chunk); err != nil {
			return abort(err)
		}
		meter.Add(len(chunk))
	}
	if out != nil {
		err := out.Close()
		out = nil
		if err != nil {
			_ = os.Remove(path)
			return "", err
		}
	}
	s.log.Infof("downloaded the file %s", name)
	return name, nil
}

// create replaces any stale file at path and opens the new one for
// appending.
func (s *Session) create(path string) (*os.File, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func (s *Session) meter(show bool, label string, total int64) progress.Meter {
	if !show || total <= 0 {
		return progress.Nop
	}
	return progress.New(s.progressOut, label, total)
}
