package cmd_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tauriforge/cli/internal/cmd"
	"github.com/tauriforge/cli/internal/depcheck"
	"github.com/tauriforge/cli/internal/modules"
	"github.com/tauriforge/cli/internal/project"
	"github.com/tauriforge/cli/internal/registry"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cmd.ExitSuccess},
		{"unknown", errors.New("boom"), cmd.ExitGeneralError},
		{"explicit code", cmd.NewExitError(errors.New("boom"), cmd.ExitDependencyError), cmd.ExitDependencyError},
		{"config key", &modules.ConfigKeyError{Module: "auth", Key: "theme"}, cmd.ExitValidationError},
		{"coercion", &modules.CoercionError{Module: "auth", Key: "secure", Value: "x", FieldType: "bool"}, cmd.ExitValidationError},
		{"dependency missing", &depcheck.DependencyMissingError{Module: "auth", Missing: "database"}, cmd.ExitDependencyError},
		{"dependency version", &depcheck.DependencyVersionError{Module: "auth", Dependency: "database"}, cmd.ExitDependencyError},
		{"reverse dependency", &depcheck.ReverseDependencyError{Module: "database", Dependent: "auth"}, cmd.ExitDependencyError},
		{"protected", &depcheck.ProtectedModuleError{Module: "core"}, cmd.ExitProtectedModule},
		{"manifest not found", fmt.Errorf("module %q: %w", "x", registry.ErrManifestNotFound), cmd.ExitNotFound},
		{"not installed", &modules.NotInstalledError{Module: "auth"}, cmd.ExitNotFound},
		{"not a project", fmt.Errorf("%w: no Cargo.toml", project.ErrNotAProject), cmd.ExitNotFound},
		{"permission", fmt.Errorf("writing: %w", os.ErrPermission), cmd.ExitFilesystemError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cmd.ExitCodeFromError(tc.err))
		})
	}
}

func TestExitErrorUnwraps(t *testing.T) {
	inner := &depcheck.ProtectedModuleError{Module: "core"}
	err := cmd.NewExitError(inner, cmd.ExitProtectedModule)

	assert.ErrorIs(t, err, depcheck.ErrProtectedModule)
	assert.Equal(t, inner.Error(), err.Error())
}
