package module

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tauriforge/cli/internal/modules"
	"github.com/tauriforge/cli/internal/output"
)

// NewUninstallCmd creates the module uninstall command.
func NewUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall <module-id>",
		Short: "Remove a module from the project",
		Long: `Deletes the module's source tree and config entry, then regenerates the
feature-flag list and the module aggregator.

Uninstalling a module that is not installed is a warning, not an error.
Protected modules (canDisable=false) and modules other enabled modules
depend on cannot be uninstalled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runUninstall(c, args[0])
		},
	}
}

func runUninstall(c *cobra.Command, id string) error {
	mgr := newManager()

	var result *modules.Result
	err := output.RunWithSpinner(c.Context(), func() error {
		var err error
		result, err = mgr.Uninstall(id)
		return err
	}, output.WithTitle(fmt.Sprintf("Uninstalling module %s...", id)))
	if err != nil {
		return err
	}

	if !result.Changed {
		output.Warn(result.Message)
		return nil
	}

	output.Println(output.FormatCheckmark(result.Message))
	return nil
}
