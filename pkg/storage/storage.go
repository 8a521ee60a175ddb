// Package storage loads and saves whole PNG buffers by name.
package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

// Storage persists complete byte buffers. Implementations do no locking of
// their own beyond what the backend provides; callers serialize writes per name.
type Storage interface {
	// Load returns the full contents stored under name.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the contents stored under name.
	Save(ctx context.Context, name string, data []byte) error

	// Create stores data under a newly generated name and returns it.
	Create(ctx context.Context, data []byte) (string, error)

	// Exists reports whether name is present.
	Exists(ctx context.Context, name string) (bool, error)

	Close() error
}
