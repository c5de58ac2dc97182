package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BlobStore implements ports.BlobStore with one file per key inside dir.
// Writes go to a temporary file that is renamed over the target, so a crash
// mid-write leaves the previous blob intact.
type BlobStore struct {
	dir string
}

// NewBlobStore creates dir if needed and returns a store rooted there.
func NewBlobStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	return &BlobStore{dir: dir}, nil
}

// Load reads the blob for key, or nil, nil when the file does not exist.
func (s *BlobStore) Load(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("file blob read: %w", err)
	}
	return blob, nil
}

// Save atomically replaces the blob for key.
func (s *BlobStore) Save(_ context.Context, key string, blob []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("file blob create temp: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("file blob write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("file blob sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file blob close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("file blob rename: %w", err)
	}
	return nil
}

func (s *BlobStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
