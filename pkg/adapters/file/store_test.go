package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/tripwizard/pkg/adapters/file"
	"github.com/aretw0/tripwizard/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "local.json"))
	ports.RunStoreContract(t, store)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "local.json")

	first := file.New(path)
	require.NoError(t, first.Set(ctx, "selectedDestination", `{"name":"Goa","price":2000}`))

	second := file.New(path)
	val, err := second.Get(ctx, "selectedDestination")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Goa","price":2000}`, val)
}

func TestFileStore_NoTempFilesLeftBehind(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := file.New(filepath.Join(dir, "local.json"))

	require.NoError(t, store.Set(ctx, "a", "1"))
	require.NoError(t, store.Set(ctx, "b", "2"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "local.json", entries[0].Name())
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := file.New(path).Get(context.Background(), "a")
	assert.Error(t, err)
}

func TestFileStore_RejectsEmptyKey(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "local.json"))
	assert.Error(t, store.Set(context.Background(), "", "x"))
}
