package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/drivepad/pkg/models"
)

func (m *EditorModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	id, _ := m.session.OpenFileID()
	var email string
	if account := m.session.Account(); account != nil {
		email = account.Email
	}

	var s strings.Builder
	s.WriteString(renderHeader(m.width, m.session.Mode(), id, email))

	if m.pickerActive {
		s.WriteString(m.renderPane("OPEN FILE", true, m.picker.View()))
	} else {
		readWrite := m.session.Mode() == models.ModeReadWrite
		s.WriteString(m.renderPane("TITLE", readWrite && m.focus == fieldTitle, m.titleInput.View()))
		s.WriteString("\n")
		s.WriteString(m.renderPane("CONTENT", readWrite && m.focus == fieldContent, m.contentInput.View()))
	}

	s.WriteString("\n")
	s.WriteString(m.renderHelp())
	return s.String()
}

// renderPane draws a bordered pane with a heading line
func (m *EditorModel) renderPane(heading string, active bool, body string) string {
	remainingWidth := m.width - 4 - len(heading) - 5
	if remainingWidth < 0 {
		remainingWidth = 0
	}

	var content strings.Builder
	content.WriteString(HeaderPaddingStyle.Render(
		GetActiveHeaderStyle(active).Render(heading) + " " +
			GetActiveColonStyle(active).Render(strings.Repeat(":", remainingWidth))))
	content.WriteString("\n")
	content.WriteString(HeaderPaddingStyle.Render(body))

	border := GetPaneBorderStyle(active).Width(m.width - 4)
	return HeaderPaddingStyle.Render(border.Render(content.String()))
}

func (m *EditorModel) renderHelp() string {
	var help []string
	if m.pickerActive {
		help = []string{
			"↑↓ navigate",
			"enter select",
			"← back",
			GetShortcutHelp("cancel", Shortcuts.Cancel),
		}
	} else {
		help = []string{
			GetShortcutHelp("open", Shortcuts.Open),
			GetShortcutHelp("new", Shortcuts.Create),
			GetShortcutHelp("save", Shortcuts.Save),
			GetShortcutHelp("list", Shortcuts.Query),
			GetShortcutHelp("copy", Shortcuts.Copy),
			GetShortcutHelp("field", Shortcuts.SwitchField),
			GetShortcutHelp("quit", Shortcuts.Quit),
		}
	}

	helpWidth := m.width - 8
	if helpWidth < 20 {
		helpWidth = 20
	}
	helpContent := formatHelpText(help, helpWidth)

	alignedHelp := lipgloss.NewStyle().
		Width(helpWidth).
		Align(lipgloss.Right).
		Render(helpContent)

	helpBorder := HelpBorderStyle.
		Width(m.width-4).
		Padding(0, 1)

	return HeaderPaddingStyle.Render(helpBorder.Render(alignedHelp))
}

// formatHelpText joins help items with separators, wrapping to width
func formatHelpText(items []string, width int) string {
	return wordwrap.String(strings.Join(items, " • "), width)
}
