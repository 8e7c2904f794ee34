package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocalDBFileIfNotExists_CreatesNestedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "overrides.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestCreateLocalDBFileIfNotExists_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.db")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	require.NoError(t, createLocalDBFileIfNotExists(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestDefaultDSN_UsesXDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	dsn, err := DefaultDSN()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "go-api-config", "overrides.db"), dsn)
}
