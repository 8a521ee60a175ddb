package stega

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ssargent/stega/pkg/codec"
	"github.com/ssargent/stega/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestService(t *testing.T) (*Service, storage.Storage) {
	t.Helper()
	store, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return NewService(store), store
}

func TestService_EncodeDecodeRemove(t *testing.T) {
	ctx := context.Background()
	svc, store := setupTestService(t)
	require.NoError(t, store.Save(ctx, "image.png", testImage(t, "IHDR", "IDAT", "IEND")))

	require.NoError(t, svc.Encode(ctx, "image.png", "ruSt", "secret"))

	types, err := svc.Print(ctx, "image.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"IHDR", "IDAT", "ruSt", "IEND"}, types)

	msg, err := svc.Decode(ctx, "image.png", "ruSt")
	require.NoError(t, err)
	assert.Equal(t, "secret", msg)

	require.NoError(t, svc.Remove(ctx, "image.png", "ruSt"))

	_, err = svc.Decode(ctx, "image.png", "ruSt")
	assert.ErrorIs(t, err, codec.ErrChunkNotFound)
}

func TestService_FailedUpdateLeavesStorage(t *testing.T) {
	ctx := context.Background()
	svc, store := setupTestService(t)
	original := testImage(t, "IHDR", "IEND")
	require.NoError(t, store.Save(ctx, "image.png", original))

	err := svc.Remove(ctx, "image.png", "zzZz")
	assert.ErrorIs(t, err, codec.ErrChunkNotFound)

	data, err := store.Load(ctx, "image.png")
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestService_MissingImage(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Print(context.Background(), "missing.png")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = svc.Encode(context.Background(), "missing.png", "ruSt", "x")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

// loadCountingStore records how often Load reaches the backend.
type loadCountingStore struct {
	storage.Storage
	loads int
}

func (s *loadCountingStore) Load(ctx context.Context, name string) ([]byte, error) {
	s.loads++
	return s.Storage.Load(ctx, name)
}

func TestService_ChecksExistenceBeforeLoad(t *testing.T) {
	ctx := context.Background()
	_, backing := setupTestService(t)
	store := &loadCountingStore{Storage: backing}
	svc := NewService(store)

	_, err := svc.Decode(ctx, "missing.png", "ruSt")
	require.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, "file not found -: missing.png", err.Error())

	err = svc.Remove(ctx, "missing.png", "ruSt")
	require.ErrorIs(t, err, storage.ErrNotFound)
	assert.Zero(t, store.loads)

	require.NoError(t, backing.Save(ctx, "image.png", testImage(t, "IHDR", "IEND")))
	_, err = svc.Print(ctx, "image.png")
	require.NoError(t, err)
	assert.Equal(t, 1, store.loads)
}

func TestService_UploadDownload(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupTestService(t)
	image := testImage(t, "IHDR", "IEND")

	name, err := svc.Upload(ctx, image)
	require.NoError(t, err)

	data, err := svc.Download(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, image, data)

	_, err = svc.Upload(ctx, []byte("not a png"))
	assert.ErrorIs(t, err, codec.ErrInvalidSignature)
}

func TestService_Inspect(t *testing.T) {
	ctx := context.Background()
	svc, store := setupTestService(t)
	require.NoError(t, store.Save(ctx, "image.png", testImage(t, "IHDR", "IEND")))

	infos, err := svc.Inspect(ctx, "image.png")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "IEND", infos[1].Type)
}

func TestService_ConcurrentEncodeSameImage(t *testing.T) {
	ctx := context.Background()
	svc, store := setupTestService(t)
	require.NoError(t, store.Save(ctx, "image.png", testImage(t, "IHDR", "IEND")))

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, svc.Encode(ctx, "image.png", "ruSt", fmt.Sprintf("msg-%d", i)))
		}(i)
	}
	wg.Wait()

	types, err := svc.Print(ctx, "image.png")
	require.NoError(t, err)
	assert.Len(t, types, writers+2)
	assert.Equal(t, "IHDR", types[0])
	assert.Equal(t, "IEND", types[len(types)-1])
	assert.Zero(t, svc.locks.size())
}
