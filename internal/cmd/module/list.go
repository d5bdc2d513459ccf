package module

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tauriforge/cli/internal/modules"
	"github.com/tauriforge/cli/internal/output"
)

// listOptions holds the flags for the list command.
type listOptions struct {
	output string
}

// NewListCmd creates the module list command.
func NewListCmd() *cobra.Command {
	opts := &listOptions{}

	c := &cobra.Command{
		Use:   "list",
		Short: "List modules and their status",
		Long: `Lists every module the registry, the project config, or the project
file tree knows about, with its status, version, category, and dependencies.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runList(opts)
		},
	}

	c.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")

	return c
}

func runList(opts *listOptions) error {
	format, err := output.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	rows, err := newManager().List()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling module list: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("marshaling module list: %w", err)
		}
		output.Print(string(data))
	default:
		output.Print(renderListTable(rows))
	}

	return nil
}

// renderListTable renders the module rows as a styled table.
func renderListTable(rows []modules.ModuleStatus) string {
	t := output.NewTable("ID", "STATUS", "VERSION", "CATEGORY", "DEPENDENCIES")

	for _, row := range rows {
		version := row.Version
		if !row.HasManifest {
			version = "-"
		}
		status := output.StatusStyle(string(row.Status)).Render(string(row.Status))
		t.Row(row.ID, status, version, row.Category, strings.Join(row.Dependencies, ", "))
	}

	return t.String() + "\n"
}
