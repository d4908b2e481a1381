package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: module names, plugin names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorYellow marks renamed files in the tree.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for tree chrome and descriptions.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleRenamed styles descriptions of renamed entries.
	StyleRenamed = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleMuted styles descriptions in the file tree.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorDimGray)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatField renders an aligned "Label: value" summary line with the value styled as a noun.
func FormatField(label, value string) string {
	return StyleDim.Render(label+":") + " " + StyleNoun.Render(value)
}
