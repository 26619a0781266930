// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const editorVersion = "GNU nano 5.8"

var (
	editorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true)

	editorHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// editorModel is a minimal nano look-alike built on a textarea.
// Ctrl+S and Esc save, Ctrl+C saves what was typed and reports an interrupt.
type editorModel struct {
	name        string
	area        textarea.Model
	interrupted bool
}

func newEditorModel(name, content string) editorModel {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.SetWidth(80)
	ta.SetHeight(20)
	ta.SetValue(content)
	ta.Focus()
	return editorModel{name: name, area: ta}
}

// Init implements tea.Model.
func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlS, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.interrupted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.area.SetWidth(msg.Width)
		m.area.SetHeight(max(3, msg.Height-4))
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m editorModel) View() string {
	title := editorTitleStyle.Render(fmt.Sprintf("  %s    %s  ", editorVersion, m.name))
	help := editorHelpStyle.Render("^S Save & Exit   Esc Save & Exit   ^C Save partial & Exit")
	return title + "\n\n" + m.area.View() + "\n\n" + help
}

func runEditor(ctx context.Context, in io.Reader, out io.Writer, name, content string) (string, error) {
	prog := tea.NewProgram(
		newEditorModel(name, content),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := prog.Run()
	if err != nil {
		return content, fmt.Errorf("running editor: %w", err)
	}

	m, ok := final.(editorModel)
	if !ok {
		return content, fmt.Errorf("running editor: unexpected model %T", final)
	}
	if m.interrupted {
		return m.area.Value(), ErrInterrupted
	}
	return m.area.Value(), nil
}
