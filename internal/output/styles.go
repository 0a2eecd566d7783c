package output

import "github.com/charmbracelet/lipgloss"

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, flavors.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for descriptions and structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the semantic styles used across the CLI.
type Styles struct {
	// Bold styles headings and the summary root line.
	Bold lipgloss.Style

	// Noun styles identifiable nouns (project names, flavors, paths).
	Noun lipgloss.Style

	// Muted styles file descriptions and other secondary text.
	Muted lipgloss.Style
}

// GetStyles returns the CLI's semantic styles.
func GetStyles() Styles {
	return Styles{
		Bold:  lipgloss.NewStyle().Bold(true),
		Noun:  lipgloss.NewStyle().Foreground(ColorCyan),
		Muted: lipgloss.NewStyle().Foreground(ColorDimGray),
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
