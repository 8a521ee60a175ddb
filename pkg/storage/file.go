package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/ksuid"
)

// FileStorage stores buffers as files. With an empty root, names are used as
// paths directly; otherwise names are resolved inside root and may not
// escape it.
type FileStorage struct {
	root string
}

// NewFileStorage creates a file-backed storage rooted at root.
func NewFileStorage(root string) (*FileStorage, error) {
	if root != "" {
		if err := os.MkdirAll(root, 0750); err != nil {
			return nil, fmt.Errorf("failed to create storage dir: %w", err)
		}
	}
	return &FileStorage{root: root}, nil
}

func (s *FileStorage) resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if s.root == "" {
		return name, nil
	}
	if filepath.IsAbs(name) || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	return filepath.Join(s.root, name), nil
}

func (s *FileStorage) Load(ctx context.Context, name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w -: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (s *FileStorage) Save(ctx context.Context, name string, data []byte) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	// Write to a sibling temp file and rename so readers never see a partial PNG.
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// Create writes data to a new file named by a KSUID with a .png suffix.
func (s *FileStorage) Create(ctx context.Context, data []byte) (string, error) {
	name := ksuid.New().String() + ".png"
	if err := s.Save(ctx, name, data); err != nil {
		return "", err
	}
	return name, nil
}

func (s *FileStorage) Exists(ctx context.Context, name string) (bool, error) {
	path, err := s.resolve(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *FileStorage) Close() error { return nil }

// ValidateName rejects names that contain path separators. It is used for
// names received over the network.
func ValidateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
