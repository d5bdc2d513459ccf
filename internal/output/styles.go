package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module ids, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "enabled" module status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "installed" (dormant) module status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failure lines (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorBrightBlue is used for table header rows.
	ColorBrightBlue = lipgloss.Color("12")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module ids, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (separators, annotations).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Module status display constants. These mirror the modules.Status values;
// they are redeclared here because modules imports this package. Keep the two
// sets in lockstep.
const (
	StatusEnabled   = "enabled"
	StatusInstalled = "installed"
	StatusAvailable = "available"
)

// StatusStyle returns the lipgloss style for a module status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusEnabled:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusInstalled:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusAvailable:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
