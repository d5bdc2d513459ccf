package artifacts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauriforge/cli/internal/artifacts"
	"github.com/tauriforge/cli/internal/testutil"
)

func TestCopyModuleTree(t *testing.T) {
	root := t.TempDir()
	testutil.WriteModule(t, root, testutil.ModuleSpec{
		ID: "auth",
		Files: map[string]string{
			"mod.rs":             "pub fn init() {}\n",
			"session/store.rs":   "pub struct Store;\n",
			"session/cookie.rs":  "pub struct Cookie;\n",
			"migrations/001.sql": "CREATE TABLE sessions;\n",
		},
	})

	dst := filepath.Join(t.TempDir(), "auth")
	require.NoError(t, artifacts.CopyModuleTree(filepath.Join(root, "auth"), dst))

	assert.Equal(t, "pub struct Store;\n",
		testutil.ReadFile(t, filepath.Join(dst, "session", "store.rs")))
	assert.Equal(t, "CREATE TABLE sessions;\n",
		testutil.ReadFile(t, filepath.Join(dst, "migrations", "001.sql")))

	// The manifest stays behind in the registry.
	_, err := os.Stat(filepath.Join(dst, "module.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestCopyModuleTree_MissingSource(t *testing.T) {
	err := artifacts.CopyModuleTree(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading module source")
}

func TestRemoveModuleTree(t *testing.T) {
	dir := t.TempDir()
	tree := filepath.Join(dir, "auth")
	testutil.WriteFile(t, tree, "mod.rs", "pub fn init() {}\n")

	require.NoError(t, artifacts.RemoveModuleTree(tree))
	_, err := os.Stat(tree)
	assert.True(t, os.IsNotExist(err))

	// Removing it again is tolerated.
	assert.NoError(t, artifacts.RemoveModuleTree(tree))
}
