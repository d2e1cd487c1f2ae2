package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mvbarbosa/robodata/internal/feed"
	"codeberg.org/mvbarbosa/robodata/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewFileStoreEmptyDir(t *testing.T) {
	_, err := storage.NewFileStore("")
	require.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	snap := feed.Snapshot{
		Motors:    []feed.Motor{{ID: 1, Velocity: 140.5, Distance: 20.0, Temperature: 71.3}},
		Pallets:   []feed.Pallet{{ID: 7, Timestamp: "2026-08-25T12:00:00Z"}},
		Gyroscope: feed.Gyroscope{Centroid: feed.Centroid{X: 0.1, Y: -0.2, Z: 0.3}},
	}

	require.NoError(t, store.Write(storage.CurrentDocument, snap))

	var got feed.Snapshot
	require.NoError(t, store.Read(storage.CurrentDocument, &got))
	assert.Equal(t, snap, got)
}

func TestWriteOverwrites(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write(storage.HistoryDocument, []feed.HistoricalRecord{
		{CollectedAt: "a"}, {CollectedAt: "b"},
	}))
	require.NoError(t, store.Write(storage.HistoryDocument, []feed.HistoricalRecord{
		{CollectedAt: "c"},
	}))

	var got []feed.HistoricalRecord
	require.NoError(t, store.Read(storage.HistoryDocument, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].CollectedAt)
}

func TestReadMissingDocument(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	var got feed.Snapshot
	err = store.Read(storage.CurrentDocument, &got)
	require.Error(t, err)
	assert.True(t, storage.IsNotFound(err), "missing document must be reported as not found")
}

func TestReadCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, storage.CurrentDocument)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var got feed.Snapshot
	err = store.Read(storage.CurrentDocument, &got)
	require.Error(t, err)
	assert.False(t, storage.IsNotFound(err), "corrupt document is not a not-found condition")
}
