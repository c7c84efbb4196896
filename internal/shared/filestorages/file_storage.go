package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidPath  = errors.New("invalid file path")
)

//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStore interface {
	// Put writes the full contents of r to path, creating parent directories
	// as needed. Data lands in a temp file and is renamed into place, so a
	// failed write never leaves a partial file at path.
	Put(ctx context.Context, path string, r io.Reader) error
	// Open opens path for reading. The caller owns the returned ReadCloser.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Exists reports whether path exists without opening it.
	Exists(ctx context.Context, path string) (bool, error)
}

type fileStore struct{}

func NewFileStore() FileStore {
	return &fileStore{}
}

func (s *fileStore) Put(ctx context.Context, path string, r io.Reader) error {
	if path == "" {
		return ErrInvalidPath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close(); _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmp, r); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Atomic replace (POSIX)
	return os.Rename(tmpPath, path)
}

func (s *fileStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	return file, nil
}

func (s *fileStore) Exists(ctx context.Context, path string) (bool, error) {
	if path == "" {
		return false, ErrInvalidPath
	}

	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
