package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusDuration is how long a StatusMsg stays on screen
const statusDuration = 3 * time.Second

// App is the root model: it owns the editor and the status bar
type App struct {
	editor    *EditorModel
	width     int
	height    int
	statusMsg string
	statusSeq int
}

func NewApp(opts EditorOptions) *App {
	return &App{
		editor: NewEditorModel(opts),
	}
}

func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

// Editor returns the editor model
func (a *App) Editor() *EditorModel {
	return a.editor
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		// Global keybindings
		if Shortcuts.Quit.Matches(msg.String()) {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case PersistentStatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		return a, nil

	case clearStatusMsg:
		// A newer message may have replaced the one this tick was for
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil
	}

	m, cmd := a.editor.Update(msg)
	if em, ok := m.(*EditorModel); ok {
		a.editor = em
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.editor.View()

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusBar := StatusBarStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// StatusMsg shows a message in the status bar for a few seconds
type StatusMsg string

// PersistentStatusMsg shows a message until another one replaces it
type PersistentStatusMsg string

type clearStatusMsg struct {
	seq int
}
