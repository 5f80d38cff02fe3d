// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling is
// semantic (Info, Muted, Error) rather than visual. When disabled, every
// helper returns the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool

	infoStyle    lipgloss.Style
	mutedStyle   lipgloss.Style
	headerStyle  lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
)

// Init initializes the style package. It respects the NO_COLOR and
// MAILDEX_NO_COLOR environment variables; if either is set, styling stays
// disabled regardless of the enable parameter. Call once from main before
// any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("MAILDEX_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if !enabled {
		return
	}

	// Force a fixed profile so output is stable regardless of lipgloss's own
	// TTY detection; the caller already decided whether stdout is a terminal.
	lipgloss.SetColorProfile(termenv.ANSI256)

	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
}

// Enabled reports whether styling is active.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Info styles command names and other primary identifiers.
func Info(text string) string { return render(infoStyle, text) }

// Muted styles secondary text such as help-topic names.
func Muted(text string) string { return render(mutedStyle, text) }

// Header styles section headings.
func Header(text string) string { return render(headerStyle, text) }

// Error styles fatal diagnostics.
func Error(text string) string { return render(errorStyle, text) }

// Warning styles non-fatal diagnostics.
func Warning(text string) string { return render(warningStyle, text) }
