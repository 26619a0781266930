// SPDX-License-Identifier: MPL-2.0

package shell

import "github.com/charmbracelet/lipgloss"

// Palette shared by the shell and the CLI.
const (
	// ColorPrimary is purple, used for banners and the prompt user.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is gray, used for secondary text.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorSuccess is green.
	ColorSuccess = lipgloss.Color("#10B981")
	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")
	// ColorHighlight is blue, used for directories.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

// Styles renders shell output. The zero value renders plain text.
type Styles struct {
	enabled bool

	dir     lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
}

// NewStyles returns styles that color output when color is true.
func NewStyles(color bool) Styles {
	return Styles{
		enabled: color,
		dir:     lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight),
		err:     lipgloss.NewStyle().Foreground(ColorError),
		success: lipgloss.NewStyle().Foreground(ColorSuccess),
		title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// Enabled reports whether output is colored.
func (s Styles) Enabled() bool { return s.enabled }

// Dir renders a directory entry.
func (s Styles) Dir(text string) string { return s.render(s.dir, text) }

// Error renders an error line.
func (s Styles) Error(text string) string { return s.render(s.err, text) }

// Success renders a success line.
func (s Styles) Success(text string) string { return s.render(s.success, text) }

// Title renders banners and headings.
func (s Styles) Title(text string) string { return s.render(s.title, text) }

// Muted renders secondary text.
func (s Styles) Muted(text string) string { return s.render(s.muted, text) }

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
