// Package exampledata fetches files from the public example-data repository.
package exampledata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://raw.githubusercontent.com/ansys/example-data/master"

// Fetcher downloads files below the pyworkbench folder of the repository.
type Fetcher struct {
	BaseURL string
	Logger  *zap.SugaredLogger

	httpClient *http.Client
}

type Option func(*Fetcher)

func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.BaseURL = u
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) {
		f.Logger = l.Named("exampledata").Sugar()
	}
}

// WithCustomizeRetryableClient lets callers tune retries, mostly for tests.
func WithCustomizeRetryableClient(fn func(*retryablehttp.Client)) Option {
	return func(f *Fetcher) {
		rc := newRetryClient(f.Logger)
		fn(rc)
		f.httpClient = rc.StandardClient()
	}
}

type logAdapter struct {
	*zap.SugaredLogger
}

func (a *logAdapter) Printf(msg string, args ...interface{}) { a.Debugf(msg, args...) }

func newRetryClient(log *zap.SugaredLogger) *retryablehttp.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.Logger = &logAdapter{SugaredLogger: log}
	return rc
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		BaseURL: DefaultBaseURL,
		Logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.httpClient == nil {
		f.httpClient = newRetryClient(f.Logger).StandardClient()
	}
	return f
}

// URL returns the location of relPath inside the repository.
func (f *Fetcher) URL(relPath string) string {
	clean := strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(relPath)), "/")
	return strings.TrimSuffix(f.BaseURL, "/") + "/pyworkbench/" + clean
}

// Download stores relPath in localDir and returns the local file name
// (the base name of relPath). Any status other than 200 is an error.
func (f *Fetcher) Download(ctx context.Context, relPath, localDir string) (string, error) {
	u := f.URL(relPath)
	name := path.Base(filepath.ToSlash(relPath))
	local := filepath.Join(localDir, name)
	f.Logger.Infow("downloading example data", "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status code %d", u, resp.StatusCode)
	}

	out, err := os.Create(local)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(local)
		return "", fmt.Errorf("write %s: %w", local, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	f.Logger.Infow("downloaded example data", "path", local)
	return name, nil
}
