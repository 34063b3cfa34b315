// Copyright Mindgrove Labs, 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDirectory(t *testing.T) {
	store, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, store)
}

func TestLoadReadsKeyFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyGemini), []byte("  g-key-123\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyClaude), []byte("a-key-456"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("ignored"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty-key"), []byte("   \n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	store, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "g-key-123", store[KeyGemini])
	assert.Equal(t, "a-key-456", store[KeyClaude])
	assert.NotContains(t, store, ".hidden")
	assert.NotContains(t, store, "empty-key")
	assert.Len(t, store, 2)
}

func TestStoreGet(t *testing.T) {
	store := Store{KeyGemini: "stored-key"}

	assert.Equal(t, "stored-key", store.Get(KeyGemini, ""))
	assert.Equal(t, "flag-key", store.Get(KeyGemini, "flag-key"), "explicit value wins")
	assert.Equal(t, "", store.Get(KeyClaude, ""))
}
