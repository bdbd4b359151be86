package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campoflow/fieldops-api/internal/storage"
)

func TestLocalStorageSaveAndOpen(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	size, err := store.Save(ctx, "reports/2026/09/ordens.csv", "text/csv", strings.NewReader("a,b,c"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)

	f, err := store.Open(ctx, "reports/2026/09/ordens.csv")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", string(data))
}

func TestLocalStorageOpenMissing(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "nope/missing.csv")
	assert.Error(t, err)
}

func TestLocalStorageDelete(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Save(ctx, "ordens.csv", "text/csv", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "ordens.csv"))
	require.NoError(t, store.Delete(ctx, "ordens.csv"), "deleting a missing file is not an error")

	_, err = store.Open(ctx, "ordens.csv")
	assert.Error(t, err)
}
