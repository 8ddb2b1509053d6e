package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"weatherdash.app/pkg/errors"
)

var fileKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileStore keeps one JSON file per key in a directory
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed and returns a store rooted there
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.NewConfigurationError("store directory cannot be empty", nil)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.NewStorageError("failed to create store directory", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("key not found: " + key)
		}
		return nil, errors.NewStorageError("failed to read "+key, err)
	}
	return data, nil
}

// Set writes through a temporary file and a rename so readers never see a partial value
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("store value cannot be nil")
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return errors.NewStorageError("failed to create temporary file", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return errors.NewStorageError("failed to write "+key, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewStorageError("failed to write "+key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.NewStorageError("failed to replace "+key, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.NewStorageError("failed to delete "+key, err)
	}
	return nil
}

func (s *FileStore) Name() string {
	return "file"
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("store key cannot be empty")
	}
	if !fileKeyPattern.MatchString(key) || key == "." || key == ".." {
		return "", errors.NewValidationError(fmt.Sprintf("invalid store key %q", key))
	}
	return filepath.Join(s.dir, key+".json"), nil
}
