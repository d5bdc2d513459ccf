package cmd

import (
	"errors"
	"os"

	"github.com/tauriforge/cli/internal/depcheck"
	"github.com/tauriforge/cli/internal/modules"
	"github.com/tauriforge/cli/internal/project"
	"github.com/tauriforge/cli/internal/registry"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError maps domain errors onto process exit codes.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, modules.ErrConfigKeyInvalid),
		errors.Is(err, modules.ErrValueCoercion):
		return ExitValidationError
	case errors.Is(err, depcheck.ErrDependencyMissing),
		errors.Is(err, depcheck.ErrDependencyVersion),
		errors.Is(err, depcheck.ErrReverseDependency):
		return ExitDependencyError
	case errors.Is(err, depcheck.ErrProtectedModule):
		return ExitProtectedModule
	case errors.Is(err, registry.ErrManifestNotFound),
		errors.Is(err, modules.ErrNotInstalled),
		errors.Is(err, project.ErrNotAProject):
		return ExitNotFound
	case errors.Is(err, os.ErrPermission),
		errors.Is(err, os.ErrNotExist):
		return ExitFilesystemError
	default:
		return ExitGeneralError
	}
}
