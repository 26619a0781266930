// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/bootcampos/bootcamp/internal/shell"

	"github.com/charmbracelet/lipgloss"
)

// ColorWarning is amber, used for warnings only the CLI prints.
const ColorWarning = lipgloss.Color("#F59E0B")

// Styles for CLI output outside the simulated shell. They share the
// shell's palette.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(shell.ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(shell.ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(shell.ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(shell.ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command names and config keys.
	CmdStyle = lipgloss.NewStyle().
			Foreground(shell.ColorHighlight)
)
