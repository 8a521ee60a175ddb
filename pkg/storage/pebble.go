package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

const keyPrefix = "png/"

// PebbleStorage keeps uploaded buffers in a pebble database keyed by name.
type PebbleStorage struct {
	db *pebble.DB
}

// NewPebbleStorage opens (or creates) the pebble database at path.
func NewPebbleStorage(path string) (*PebbleStorage, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", path, err)
	}
	return &PebbleStorage{db: db}, nil
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}

func (s *PebbleStorage) Load(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	data, closer, err := s.db.Get(key(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w -: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	// The slice is only valid until closer is closed.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *PebbleStorage) Save(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	return s.db.Set(key(name), data, pebble.Sync)
}

func (s *PebbleStorage) Create(ctx context.Context, data []byte) (string, error) {
	id := ksuid.New()
	name := id.String() + ".png"
	if err := s.Save(ctx, name, data); err != nil {
		return "", err
	}
	return name, nil
}

func (s *PebbleStorage) Exists(ctx context.Context, name string) (bool, error) {
	_, closer, err := s.db.Get(key(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	closer.Close()
	return true, nil
}

func (s *PebbleStorage) Close() error {
	return s.db.Close()
}
