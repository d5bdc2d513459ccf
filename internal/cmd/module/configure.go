package module

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tauriforge/cli/internal/output"
)

// NewConfigureCmd creates the module configure command.
func NewConfigureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure <module-id> <key> <value>",
		Short: "Set a module config value",
		Long: `Sets one config key for an installed module. The key must exist in the
module's config schema and the value must parse as the schema's declared
type (bool, number, or string).`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConfigure(args[0], args[1], args[2])
		},
	}
}

func runConfigure(id, key, value string) error {
	if err := newManager().Configure(id, key, value); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("set %s.%s = %s", id, key, value)))
	return nil
}
