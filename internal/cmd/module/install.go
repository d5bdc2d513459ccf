package module

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tauriforge/cli/internal/modules"
	"github.com/tauriforge/cli/internal/output"
)

// NewInstallCmd creates the module install command.
func NewInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <module-id>",
		Short: "Install a module into the project",
		Long: `Copies the module's source tree into the project, enables it, and
regenerates the feature-flag list and the module aggregator.

Installing an already-installed module is a warning, not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInstall(c, args[0])
		},
	}
}

func runInstall(c *cobra.Command, id string) error {
	mgr := newManager()

	var result *modules.Result
	err := output.RunWithSpinner(c.Context(), func() error {
		var err error
		result, err = mgr.Install(id)
		return err
	}, output.WithTitle(fmt.Sprintf("Installing module %s...", id)))
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
