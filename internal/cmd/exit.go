// Package cmd provides shared command-layer plumbing for the tauriforge CLI.
package cmd

// Exit codes reported by the CLI process.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid user input (bad config key or value).
	ExitValidationError = 2

	// ExitDependencyError indicates a dependency constraint blocked the operation.
	ExitDependencyError = 3

	// ExitProtectedModule indicates an attempt to remove a non-disableable module.
	ExitProtectedModule = 4

	// ExitNotFound indicates a module, manifest, or project was not found.
	ExitNotFound = 5

	// ExitFilesystemError indicates a filesystem read or write failed.
	ExitFilesystemError = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitDependencyError:
		return "Dependency Error"
	case ExitProtectedModule:
		return "Protected Module"
	case ExitNotFound:
		return "Not Found"
	case ExitFilesystemError:
		return "Filesystem Error"
	default:
		return "Unknown"
	}
}
