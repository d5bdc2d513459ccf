package registry_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauriforge/cli/internal/registry"
	"github.com/tauriforge/cli/internal/testutil"
)

func TestDiscover_MissingRootIsEmpty(t *testing.T) {
	reg := registry.New(filepath.Join(t.TempDir(), "does-not-exist"))

	manifests, err := reg.Discover()
	require.NoError(t, err)
	assert.Empty(t, manifests)
}

func TestDiscover_SortedAndSkipsBadEntries(t *testing.T) {
	root := t.TempDir()
	testutil.WriteModule(t, root, testutil.ModuleSpec{ID: "storage", CanDisable: true})
	testutil.WriteModule(t, root, testutil.ModuleSpec{ID: "auth", CanDisable: true})

	// A directory without a manifest and a file at the root are both ignored.
	testutil.WriteFile(t, root, filepath.Join("scratch", "notes.txt"), "x")
	testutil.WriteFile(t, root, "README.md", "not a module")

	// A malformed manifest is skipped, not fatal.
	testutil.WriteFile(t, root, filepath.Join("broken", "module.json"), "{not json")

	manifests, err := registry.New(root).Discover()
	require.NoError(t, err)
	require.Len(t, manifests, 2)
	assert.Equal(t, "auth", manifests[0].ID)
	assert.Equal(t, "storage", manifests[1].ID)
}

func TestDiscover_SkipsManifestIDMismatch(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, filepath.Join("auth", "module.json"),
		`{"id": "something_else", "name": "auth", "version": "1.0.0", "canDisable": true}`)

	manifests, err := registry.New(root).Discover()
	require.NoError(t, err)
	assert.Empty(t, manifests)
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	testutil.WriteModule(t, root, testutil.ModuleSpec{
		ID:      "database",
		Version: "2.1.0",
		Dependencies: []map[string]any{
			testutil.Dep("auth", ">=1.0.0", false),
			testutil.Dep("cache", "", true),
		},
		ConfigSchema: map[string]any{
			"poolSize": map[string]any{"fieldType": "number", "default": 10},
		},
	})

	reg := registry.New(root)

	m, err := reg.Load("database")
	require.NoError(t, err)
	assert.Equal(t, "database", m.ID)
	assert.Equal(t, "2.1.0", m.Version)
	require.Len(t, m.Dependencies, 2)
	assert.Equal(t, "auth", m.Dependencies[0].ModuleID)
	assert.Equal(t, ">=1.0.0", m.Dependencies[0].VersionReq)
	assert.False(t, m.Dependencies[0].Optional)
	assert.True(t, m.Dependencies[1].Optional)
	require.Contains(t, m.ConfigSchema, "poolSize")
	assert.Equal(t, registry.FieldNumber, m.ConfigSchema["poolSize"].FieldType)

	_, err = reg.Load("nope")
	require.ErrorIs(t, err, registry.ErrManifestNotFound)
}

func TestLoad_RejectsInvalidManifests(t *testing.T) {
	tests := []struct {
		name        string
		manifest    string
		errContains string
	}{
		{
			name:        "missing id",
			manifest:    `{"name": "x", "version": "1.0.0"}`,
			errContains: "missing id",
		},
		{
			name:        "id directory mismatch",
			manifest:    `{"id": "bad", "name": "Bad", "version": "1.0.0"}`,
			errContains: "does not match directory name",
		},
		{
			name:        "missing name",
			manifest:    `{"id": "mod", "version": "1.0.0"}`,
			errContains: "missing name",
		},
		{
			name: "self dependency",
			manifest: `{"id": "mod", "name": "mod", "version": "1.0.0",
				"dependencies": [{"moduleId": "mod"}]}`,
			errContains: "references itself",
		},
		{
			name: "bad version constraint",
			manifest: `{"id": "mod", "name": "mod", "version": "1.0.0",
				"dependencies": [{"moduleId": "other", "versionReq": "not-a-range"}]}`,
			errContains: "versionReq",
		},
		{
			name: "unknown field type",
			manifest: `{"id": "mod", "name": "mod", "version": "1.0.0",
				"configSchema": {"k": {"fieldType": "json"}}}`,
			errContains: "unknown fieldType",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			testutil.WriteFile(t, root, filepath.Join("mod", "module.json"), tc.manifest)

			_, err := registry.New(root).Load("mod")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestModuleIDPattern(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"auth", true},
		{"sqlite_storage", true},
		{"a1", true},
		{"Auth", false},
		{"1auth", false},
		{"auth-db", false},
		{"_auth", false},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			root := t.TempDir()
			testutil.WriteFile(t, root, filepath.Join(tc.id, "module.json"),
				`{"id": "`+tc.id+`", "name": "m", "version": "1.0.0", "canDisable": true}`)

			_, err := registry.New(root).Load(tc.id)
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
