// Package output provides styled terminal rendering helpers for savepaths.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for usable paths and insertions.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for rejected paths and deletions.
	ColorError = lipgloss.Color("#ef5350")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleSuccess is used for positive values.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleError is used for negative values.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleLabel is used for summary labels.
	StyleLabel = lipgloss.NewStyle().
			Width(20)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleMuted = plain
		StyleLabel = plain.Width(20)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Section renders a section header line.
func Section(title string) string {
	return StyleHeader.Render(title)
}

// Verdict renders a usable flag as a colored yes/no.
func Verdict(usable bool) string {
	if usable {
		return StyleSuccess.Render("yes")
	}

	return StyleError.Render("no")
}
