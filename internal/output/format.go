package output

import (
	"fmt"
	"strings"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	// FormatTable outputs in table format.
	FormatTable OutputFormat = "table"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"

	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// An empty string means the default (table); unknown values are an error
// naming the valid formats.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format %q, use one of: %s",
			s, strings.Join(ValidFormats(), ", "))
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}
