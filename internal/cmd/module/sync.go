package module

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tauriforge/cli/internal/output"
)

// syncOptions holds the flags for the sync command.
type syncOptions struct {
	check bool
}

// NewSyncCmd creates the module sync command.
func NewSyncCmd() *cobra.Command {
	opts := &syncOptions{}

	c := &cobra.Command{
		Use:   "sync",
		Short: "Regenerate the feature list and aggregator from the project config",
		Long: `Recomputes the feature-flag list and the module aggregator file from the
persisted module config. Per-module source trees are untouched; use this to
repair the two generated files after manual edits or an interrupted command.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runSync(c, opts)
		},
	}

	c.Flags().BoolVar(&opts.check, "check", false, "Report drift without writing anything")

	return c
}

func runSync(c *cobra.Command, opts *syncOptions) error {
	mgr := newManager()

	if opts.check {
		drift, err := mgr.SyncCheck()
		if err != nil {
			return err
		}
		if drift.InSync() {
			output.Println(output.FormatCheckmark("artifacts are in sync"))
			return nil
		}
		if drift.Features {
			output.Warn("feature-flag list differs from the module config")
		}
		if drift.Aggregator {
			output.Warn("module aggregator differs from the module config")
		}
		return fmt.Errorf("artifacts are out of sync; run 'tauriforge module sync'")
	}

	err := output.RunWithSpinner(c.Context(), mgr.Sync,
		output.WithTitle("Syncing build artifacts..."))
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("regenerated feature list and module aggregator"))
	return nil
}
