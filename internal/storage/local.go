package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type localProvider struct {
	dir     string
	baseURL string
}

func newLocalProvider(s Settings) (*localProvider, error) {
	dir := s.LocalDir
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &localProvider{dir: dir, baseURL: strings.TrimSuffix(s.LocalBaseURL, "/")}, nil
}

// path maps an object key onto the storage dir, refusing traversal out of it.
func (p *localProvider) path(objectKey string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(objectKey))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", errors.New("invalid object key")
	}
	return filepath.Join(p.dir, clean), nil
}

func (p *localProvider) Put(_ context.Context, objectKey, _ string, r io.Reader) error {
	dst, err := p.path(objectKey)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (p *localProvider) Open(_ context.Context, objectKey string) (io.ReadCloser, error) {
	src, err := p.path(objectKey)
	if err != nil {
		return nil, err
	}
	return os.Open(src)
}

func (p *localProvider) Delete(_ context.Context, objectKey string) error {
	dst, err := p.path(objectKey)
	if err != nil {
		return err
	}
	err = os.Remove(dst)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (p *localProvider) URL(objectKey string) string {
	return p.baseURL + "/files/" + objectKey
}
