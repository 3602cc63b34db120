package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// DiskSink stores exported pages on the local filesystem.
type DiskSink struct {
	dir string
}

// NewDiskSink creates a DiskSink rooted at dir, creating it if needed.
func NewDiskSink(dir string) (*DiskSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskSink{dir: dir}, nil
}

// Store writes the page to dir/key, creating parent directories.
func (s *DiskSink) Store(ctx context.Context, key string, body io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}
