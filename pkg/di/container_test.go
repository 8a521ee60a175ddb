package di

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/stega/pkg/config"
	"github.com/ssargent/stega/pkg/storage"
)

func TestDefaultStorageFactory(t *testing.T) {
	t.Run("file backend", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.DataDir = t.TempDir()

		s, err := DefaultStorageFactory(cfg)
		require.NoError(t, err)
		defer s.Close()

		assert.IsType(t, &storage.FileStorage{}, s)
		assert.DirExists(t, filepath.Join(cfg.DataDir, "images"))
	})

	t.Run("pebble backend", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.DataDir = t.TempDir()
		cfg.Storage.Backend = config.BackendPebble

		s, err := DefaultStorageFactory(cfg)
		require.NoError(t, err)
		defer s.Close()

		assert.IsType(t, &storage.PebbleStorage{}, s)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Storage.Backend = "tape"

		_, err := DefaultStorageFactory(cfg)
		assert.Error(t, err)
	})
}

func TestContainer_Overrides(t *testing.T) {
	c := NewContainer()
	require.NotNil(t, c.LocalStorage())

	local, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	c.SetLocalStorage(local)
	assert.Same(t, local, c.LocalStorage())

	called := false
	c.SetStorageFactory(func(cfg *config.Config) (storage.Storage, error) {
		called = true
		return local, nil
	})
	s, err := c.OpenStorage(config.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, called)

	ok, err := s.Exists(context.Background(), "missing.png")
	require.NoError(t, err)
	assert.False(t, ok)
}
