package depcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tauriforge/cli/internal/depcheck"
	"github.com/tauriforge/cli/internal/modconfig"
	"github.com/tauriforge/cli/internal/registry"
	"github.com/tauriforge/cli/internal/testutil"
)

// setupRegistry writes the module fixtures used across install validation
// tests: database v2.1.0 and an auth module depending on it.
func setupRegistry(t *testing.T, authVersionReq string) *registry.Registry {
	t.Helper()
	root := t.TempDir()
	testutil.WriteModule(t, root, testutil.ModuleSpec{
		ID: "database", Version: "2.1.0", CanDisable: true,
	})
	testutil.WriteModule(t, root, testutil.ModuleSpec{
		ID: "auth", Version: "1.0.0", CanDisable: true,
		Dependencies: []map[string]any{testutil.Dep("database", authVersionReq, false)},
	})
	return registry.New(root)
}

func enabledConfig(ids ...string) modconfig.GlobalConfig {
	cfg := modconfig.GlobalConfig{}
	for _, id := range ids {
		cfg[id] = modconfig.NewEntry(id)
	}
	return cfg
}

func TestValidateInstall_DependencyMissing(t *testing.T) {
	reg := setupRegistry(t, "")
	auth, err := reg.Load("auth")
	require.NoError(t, err)

	// Not installed at all.
	err = depcheck.ValidateInstall(auth, modconfig.GlobalConfig{}, map[string]bool{}, reg)
	require.ErrorIs(t, err, depcheck.ErrDependencyMissing)

	var missing *depcheck.DependencyMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "auth", missing.Module)
	assert.Equal(t, "database", missing.Missing)

	// Installed on disk but disabled in config still blocks.
	cfg := enabledConfig("database")
	cfg["database"].Enabled = false
	err = depcheck.ValidateInstall(auth, cfg, map[string]bool{"database": true}, reg)
	require.ErrorIs(t, err, depcheck.ErrDependencyMissing)

	// Enabled in config but source tree missing blocks too.
	err = depcheck.ValidateInstall(auth, enabledConfig("database"), map[string]bool{}, reg)
	require.ErrorIs(t, err, depcheck.ErrDependencyMissing)
}

func TestValidateInstall_Satisfied(t *testing.T) {
	reg := setupRegistry(t, ">=2.0.0")
	auth, err := reg.Load("auth")
	require.NoError(t, err)

	err = depcheck.ValidateInstall(auth, enabledConfig("database"), map[string]bool{"database": true}, reg)
	assert.NoError(t, err)
}

func TestValidateInstall_VersionUnsatisfied(t *testing.T) {
	reg := setupRegistry(t, ">=3.0.0")
	auth, err := reg.Load("auth")
	require.NoError(t, err)

	err = depcheck.ValidateInstall(auth, enabledConfig("database"), map[string]bool{"database": true}, reg)
	require.ErrorIs(t, err, depcheck.ErrDependencyVersion)

	var verr *depcheck.DependencyVersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "database", verr.Dependency)
	assert.Equal(t, "2.1.0", verr.Version)
	assert.Equal(t, ">=3.0.0", verr.Constraint)
}

func TestValidateInstall_OptionalEdgesNeverChecked(t *testing.T) {
	root := t.TempDir()
	testutil.WriteModule(t, root, testutil.ModuleSpec{
		ID: "reports", Version: "1.0.0", CanDisable: true,
		Dependencies: []map[string]any{testutil.Dep("charts", ">=9.0.0", true)},
	})
	reg := registry.New(root)
	reports, err := reg.Load("reports")
	require.NoError(t, err)

	err = depcheck.ValidateInstall(reports, modconfig.GlobalConfig{}, map[string]bool{}, reg)
	assert.NoError(t, err)
}

func TestValidateUninstall_Protected(t *testing.T) {
	core := &registry.Manifest{ID: "core", Name: "core", Version: "1.0.0", CanDisable: false}

	err := depcheck.ValidateUninstall(core, nil, modconfig.GlobalConfig{}, map[string]bool{})
	require.ErrorIs(t, err, depcheck.ErrProtectedModule)

	var perr *depcheck.ProtectedModuleError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "core", perr.Module)
}

func TestValidateUninstall_ReverseDependency(t *testing.T) {
	database := &registry.Manifest{ID: "database", Name: "database", Version: "2.1.0", CanDisable: true}
	auth := &registry.Manifest{
		ID: "auth", Name: "auth", Version: "1.0.0", CanDisable: true,
		Dependencies: []registry.Dependency{{ModuleID: "database"}},
	}
	manifests := []*registry.Manifest{auth, database}

	// auth installed and enabled: database is blocked.
	err := depcheck.ValidateUninstall(database, manifests, enabledConfig("auth", "database"),
		map[string]bool{"auth": true, "database": true})
	require.ErrorIs(t, err, depcheck.ErrReverseDependency)

	var rerr *depcheck.ReverseDependencyError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "database", rerr.Module)
	assert.Equal(t, "auth", rerr.Dependent)

	// auth disabled in config: the edge no longer blocks.
	cfg := enabledConfig("auth", "database")
	cfg["auth"].Enabled = false
	err = depcheck.ValidateUninstall(database, manifests, cfg,
		map[string]bool{"auth": true, "database": true})
	assert.NoError(t, err)

	// auth's source tree gone: same.
	err = depcheck.ValidateUninstall(database, manifests, enabledConfig("auth", "database"),
		map[string]bool{"database": true})
	assert.NoError(t, err)
}

func TestValidateUninstall_OptionalReverseEdgeDoesNotBlock(t *testing.T) {
	database := &registry.Manifest{ID: "database", Name: "database", Version: "2.1.0", CanDisable: true}
	reports := &registry.Manifest{
		ID: "reports", Name: "reports", Version: "1.0.0", CanDisable: true,
		Dependencies: []registry.Dependency{{ModuleID: "database", Optional: true}},
	}

	err := depcheck.ValidateUninstall(database, []*registry.Manifest{database, reports},
		enabledConfig("database", "reports"),
		map[string]bool{"database": true, "reports": true})
	assert.NoError(t, err)
}
