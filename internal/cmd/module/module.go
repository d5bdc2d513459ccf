// Package module provides the `tauriforge module` command group.
package module

import (
	"github.com/spf13/cobra"

	"github.com/tauriforge/cli/internal/cmd"
	"github.com/tauriforge/cli/internal/modules"
)

// NewModuleCmd creates the module command group.
func NewModuleCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "module",
		Short: "Manage optional modules of a generated project",
		Long: `Commands for toggling optional modules (database, auth, ...) in a
generated project and keeping its build artifacts in sync.`,
	}

	c.AddCommand(
		NewListCmd(),
		NewInfoCmd(),
		NewInstallCmd(),
		NewUninstallCmd(),
		NewConfigureCmd(),
		NewSyncCmd(),
	)

	return c
}

// newManager builds a manager from the resolved global flags.
func newManager() *modules.Manager {
	g := cmd.GetGlobals()
	return modules.New(g.ProjectRoot, g.ResolveModulesRoot())
}
