package module

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tauriforge/cli/internal/modules"
	"github.com/tauriforge/cli/internal/output"
)

// infoOptions holds the flags for the info command.
type infoOptions struct {
	output string
}

// NewInfoCmd creates the module info command.
func NewInfoCmd() *cobra.Command {
	opts := &infoOptions{}

	c := &cobra.Command{
		Use:   "info <module-id>",
		Short: "Show a module's manifest, status, and configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInfo(args[0], opts)
		},
	}

	c.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")

	return c
}

func runInfo(id string, opts *infoOptions) error {
	format, err := output.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	info, err := newManager().Info(id)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling module info: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("marshaling module info: %w", err)
		}
		output.Print(string(data))
	default:
		output.Print(renderInfo(info))
	}

	return nil
}

// renderInfo renders the module description as human-readable text.
func renderInfo(info *modules.Info) string {
	m := info.Manifest
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", output.StyleSummary.Render(m.Name), output.StyleDim.Render("("+m.ID+")"))
	if m.Description != "" {
		fmt.Fprintf(&b, "%s\n", m.Description)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Status:    %s\n", output.StatusStyle(string(info.Status)).Render(string(info.Status)))
	fmt.Fprintf(&b, "Version:   %s\n", m.Version)
	if m.Category != "" {
		fmt.Fprintf(&b, "Category:  %s\n", m.Category)
	}
	if m.License != "" {
		fmt.Fprintf(&b, "License:   %s\n", m.License)
	}
	if len(m.Authors) > 0 {
		fmt.Fprintf(&b, "Authors:   %s\n", strings.Join(m.Authors, ", "))
	}
	if len(m.Tags) > 0 {
		fmt.Fprintf(&b, "Tags:      %s\n", strings.Join(m.Tags, ", "))
	}
	if !m.CanDisable {
		fmt.Fprintf(&b, "Protected: cannot be uninstalled\n")
	}

	if len(m.Dependencies) > 0 {
		b.WriteString("\nDependencies:\n")
		for _, dep := range m.Dependencies {
			line := "  " + output.StyleNoun.Render(dep.ModuleID)
			if dep.VersionReq != "" {
				line += " " + dep.VersionReq
			}
			if dep.Optional {
				line += " " + output.StyleDim.Render("(optional)")
			}
			b.WriteString(line + "\n")
		}
	}

	if len(m.Commands) > 0 {
		fmt.Fprintf(&b, "\nCommands: %s\n", strings.Join(m.Commands, ", "))
	}

	if len(info.Config) > 0 {
		b.WriteString("\nConfiguration:\n")
		keys := make([]string, 0, len(info.Config))
		for key := range info.Config {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			value := info.Config[key]
			field := m.ConfigSchema[key]
			line := fmt.Sprintf("  %s = %v", key, value)
			if field.Description != "" {
				line += "  " + output.StyleDim.Render("# "+field.Description)
			}
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
