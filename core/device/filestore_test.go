package device_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicefinder/core/device"
)

const testDB = `[
	{"id": 1, "name": "ThinkPad X1", "mpn": "20XW", "data": {"battery": {"capacity__wh": 57}}},
	{"id": 2, "name": "MacBook Air", "mpn": "MGN63"}
]`

func newTestStore(t *testing.T) (*device.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.json")
	require.NoError(t, os.WriteFile(path, []byte(testDB), 0o644))

	store, err := device.NewFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestFileStoreAll(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	records, err := store.All(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ThinkPad X1", records[0].Name)
	assert.Equal(t, 57.0, records[0].Attrs["battery"]["capacity__wh"])
	assert.Equal(t, 2, store.Len())
}

func TestFileStoreGet(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	rec, err := store.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "MacBook Air", rec.Name)

	_, err = store.Get(context.Background(), 99)
	assert.ErrorIs(t, err, device.ErrRecordNotFound)
}

func TestFileStoreSaveDescriptionPersists(t *testing.T) {
	t.Parallel()

	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDescription(ctx, 1, "A business ultrabook."))

	rec, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A business ultrabook.", rec.Description)

	// The update survives a reload from disk.
	reloaded, err := device.NewFileStore(path)
	require.NoError(t, err)
	rec, err = reloaded.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A business ultrabook.", rec.Description)
}

func TestFileStoreSaveDescriptionUnknownID(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	err := store.SaveDescription(context.Background(), 404, "nope")
	assert.ErrorIs(t, err, device.ErrRecordNotFound)
}

func TestNewFileStoreMissingFile(t *testing.T) {
	t.Parallel()

	_, err := device.NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, device.ErrStoreUnavailable)
}
