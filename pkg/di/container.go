// Package di provides dependency injection container
package di

import (
	"fmt"

	"github.com/ssargent/stega/pkg/config"
	"github.com/ssargent/stega/pkg/storage"
)

// StorageFactory opens the storage backend selected by a configuration
type StorageFactory func(cfg *config.Config) (storage.Storage, error)

// Container holds all the dependencies for the application
type Container struct {
	storageFactory StorageFactory
	localStorage   storage.Storage
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	local, _ := storage.NewFileStorage("")
	return &Container{
		storageFactory: DefaultStorageFactory,
		localStorage:   local,
	}
}

// DefaultStorageFactory opens a file or pebble backend under the configured path
func DefaultStorageFactory(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return storage.NewFileStorage(cfg.StoragePath())
	case config.BackendPebble:
		return storage.NewPebbleStorage(cfg.StoragePath())
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}

// OpenStorage opens the storage used by the server
func (c *Container) OpenStorage(cfg *config.Config) (storage.Storage, error) {
	return c.storageFactory(cfg)
}

// LocalStorage returns the storage used by CLI commands, which address
// images by file path
func (c *Container) LocalStorage() storage.Storage {
	return c.localStorage
}

// SetStorageFactory allows overriding the server storage factory (for testing)
func (c *Container) SetStorageFactory(factory StorageFactory) {
	c.storageFactory = factory
}

// SetLocalStorage allows overriding the CLI storage (for testing)
func (c *Container) SetLocalStorage(s storage.Storage) {
	c.localStorage = s
}
