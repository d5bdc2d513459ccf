package project_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauriforge/cli/internal/project"
	"github.com/tauriforge/cli/internal/testutil"
)

func TestLayoutPaths(t *testing.T) {
	l := project.New("/work/app")

	assert.Equal(t, filepath.Join("/work/app", "modules.config.json"), l.ConfigFile())
	assert.Equal(t, filepath.Join("/work/app", "src-tauri", "Cargo.toml"), l.BuildDescriptor())
	assert.Equal(t, filepath.Join("/work/app", "src-tauri", "src", "modules"), l.ModulesDir())
	assert.Equal(t, filepath.Join("/work/app", "src-tauri", "src", "modules", "auth"), l.ModuleDir("auth"))
	assert.Equal(t, filepath.Join("/work/app", "src-tauri", "src", "modules", "mod.rs"), l.AggregatorFile())
}

func TestCheck(t *testing.T) {
	root := testutil.TempProject(t)
	assert.NoError(t, project.New(root).Check())

	err := project.New(t.TempDir()).Check()
	require.ErrorIs(t, err, project.ErrNotAProject)
}

func TestIsInstalled(t *testing.T) {
	root := testutil.TempProject(t)
	l := project.New(root)

	assert.False(t, l.IsInstalled("auth"))

	testutil.WriteFile(t, l.ModuleDir("auth"), "mod.rs", "pub fn init() {}\n")
	assert.True(t, l.IsInstalled("auth"))

	// A plain file where the module directory should be does not count.
	testutil.WriteFile(t, l.ModulesDir(), "stray", "x")
	assert.False(t, l.IsInstalled("stray"))

	installed := l.InstalledModules([]string{"auth", "database", "stray"})
	assert.Equal(t, map[string]bool{"auth": true}, installed)
}
