package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: component names, versions, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for added modules.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for changed modules.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for removed modules.
	ColorRed = lipgloss.Color("196")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (component names, versions, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAdded styles added-module lines.
	StyleAdded = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleRemoved styles removed-module lines.
	StyleRemoved = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleChanged styles changed-module lines.
	StyleChanged = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome (separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)
