package stega

import (
	"context"
	"fmt"

	"github.com/ssargent/stega/pkg/codec"
	"github.com/ssargent/stega/pkg/storage"
)

// Service runs the chunk commands against buffers held in a Storage.
// Calls on the same name are serialized; different names run in parallel.
type Service struct {
	store storage.Storage
	locks *keyedMutex
}

// NewService creates a service backed by store.
func NewService(store storage.Storage) *Service {
	return &Service{
		store: store,
		locks: newKeyedMutex(),
	}
}

// Print lists the chunk types of the named image.
func (s *Service) Print(ctx context.Context, name string) ([]string, error) {
	buf, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}
	return ListTypeCodes(buf)
}

// Inspect returns per-chunk details of the named image.
func (s *Service) Inspect(ctx context.Context, name string) ([]ChunkInfo, error) {
	buf, err := s.load(ctx, name)
	if err != nil {
		return nil, err
	}
	return InspectChunks(buf)
}

// Encode hides message in a new chunk of the given type and writes the
// image back.
func (s *Service) Encode(ctx context.Context, name, chunkType, message string) error {
	return s.update(ctx, name, func(buf []byte) ([]byte, error) {
		return InsertRecord(buf, chunkType, message)
	})
}

// Decode returns the message held in the first chunk of the given type.
func (s *Service) Decode(ctx context.Context, name, chunkType string) (string, error) {
	buf, err := s.load(ctx, name)
	if err != nil {
		return "", err
	}
	return ExtractPayload(buf, chunkType)
}

// Remove deletes the first chunk of the given type and writes the image back.
func (s *Service) Remove(ctx context.Context, name, chunkType string) error {
	return s.update(ctx, name, func(buf []byte) ([]byte, error) {
		return DeleteRecord(buf, chunkType)
	})
}

// Upload stores a new image after checking that it parses.
func (s *Service) Upload(ctx context.Context, data []byte) (string, error) {
	if _, err := codec.Parse(data); err != nil {
		return "", err
	}
	return s.store.Create(ctx, data)
}

// Download returns the raw bytes of the named image.
func (s *Service) Download(ctx context.Context, name string) ([]byte, error) {
	return s.load(ctx, name)
}

func (s *Service) load(ctx context.Context, name string) ([]byte, error) {
	unlock := s.locks.Lock(name)
	defer unlock()
	return s.read(ctx, name)
}

func (s *Service) update(ctx context.Context, name string, fn func([]byte) ([]byte, error)) error {
	unlock := s.locks.Lock(name)
	defer unlock()

	buf, err := s.read(ctx, name)
	if err != nil {
		return err
	}
	out, err := fn(buf)
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, name, out); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}

// read checks that name exists before loading it. The caller holds the
// name's lock.
func (s *Service) read(ctx context.Context, name string) ([]byte, error) {
	ok, err := s.store.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w -: %s", storage.ErrNotFound, name)
	}
	return s.store.Load(ctx, name)
}
