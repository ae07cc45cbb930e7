package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps uploads in one flat directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(key string) string {
	// Keys are generated server-side, but never trust them with separators.
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *LocalStore) Save(key string, r io.Reader, size int64, contentType string) (string, error) {
	dst, err := os.Create(s.path(key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return key, nil
}

func (s *LocalStore) Open(key string) (io.ReadCloser, error) {
	return os.Open(s.path(key))
}

func (s *LocalStore) Delete(key string) error {
	return os.Remove(s.path(key))
}
