package artifacts_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauriforge/cli/internal/artifacts"
)

func TestAggregatorContent(t *testing.T) {
	content := string(artifacts.AggregatorContent([]string{"database", "auth"}))

	assert.Contains(t, content, `#[cfg(feature = "module-auth")]`)
	assert.Contains(t, content, "pub mod auth;")
	assert.Contains(t, content, "pub use auth::*;")
	assert.Contains(t, content, "pub mod database;")

	// Sorted: auth before database.
	assert.Less(t,
		strings.Index(content, "pub mod auth;"),
		strings.Index(content, "pub mod database;"))

	assert.Nil(t, artifacts.AggregatorContent(nil))
}

func TestSyncAggregator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules", "mod.rs")

	require.NoError(t, artifacts.SyncAggregator(path, []string{"auth"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pub mod auth;")

	inSync, err := artifacts.CheckAggregator(path, []string{"auth"})
	require.NoError(t, err)
	assert.True(t, inSync)

	inSync, err = artifacts.CheckAggregator(path, []string{"auth", "database"})
	require.NoError(t, err)
	assert.False(t, inSync)

	// Empty set deletes the file.
	require.NoError(t, artifacts.SyncAggregator(path, nil))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	inSync, err = artifacts.CheckAggregator(path, nil)
	require.NoError(t, err)
	assert.True(t, inSync)

	// Deleting an already-absent file is a no-op.
	require.NoError(t, artifacts.SyncAggregator(path, nil))
}

func TestSyncAggregator_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mod.rs")

	require.NoError(t, artifacts.SyncAggregator(path, []string{"auth", "database"}))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, artifacts.SyncAggregator(path, []string{"database", "auth"}))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
