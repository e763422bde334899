package token

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileStore(path)

	require.NoError(t, store.Save("signed.bearer.token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	bearer, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "signed.bearer.token", bearer)
}

func TestFileStore_LoadTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("signed.bearer.token\n"), 0600))

	bearer, err := NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "signed.bearer.token", bearer)
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing"))

	_, err := store.Load()
	assert.ErrorContains(t, err, "token not found")
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewFileStore(path)

	require.NoError(t, store.Save("signed.bearer.token"))
	require.NoError(t, store.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
