package questionbank

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source fetches raw bank files by slash-separated path, for example
// "themes/vocabulary.json" or "catalog.json".
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// ThemePath returns the path of a theme's bank file within a Source.
func ThemePath(theme string) string {
	return "themes/" + theme + ".json"
}

// HTTPSource fetches bank files from a static HTTP server.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates an HTTPSource rooted at baseURL. A zero timeout
// leaves requests bounded only by the caller's context.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch performs a GET for name. Any non-2xx status is an error and a
// 404 maps to ErrNotFound.
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := s.baseURL + "/" + strings.TrimLeft(name, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// FSSource reads bank files from a filesystem, typically a directory
// laid out as <root>/themes/<theme>.json.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a Source over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// NewDirSource creates a Source over the directory root.
func NewDirSource(root string) *FSSource {
	return NewFSSource(os.DirFS(root))
}

func (s *FSSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid bank path %q", name)
	}

	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return data, err
}
