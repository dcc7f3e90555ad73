package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/drivepad/pkg/models"
)

// Version is shown in the header; set from main.
var Version = "dev"

// headerHeight is the number of lines renderHeader produces
const headerHeight = 2

// renderHeader draws the app name on the left and the mode badge, open file
// and account on the right
func renderHeader(width int, mode models.EditorMode, fileID, account string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // Pink/magenta color
		Bold(true)

	logo := logoStyle.Render("drivepad") + " " + DescriptionStyle.Render(Version)

	badge := GetModeBadgeStyle(mode == models.ModeReadWrite).Render(mode.String())

	var details string
	if fileID != "" {
		details = DescriptionStyle.Render(" " + truncate.StringWithTail(fileID, 24, "…"))
	}
	if account != "" {
		details += DescriptionStyle.Render(" · " + account)
	}

	right := badge + details

	// Header padding style (matching pane padding)
	contentWidth := width - 2
	gap := contentWidth - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		logo,
		lipgloss.NewStyle().Width(gap).Render(""),
		right,
	)

	return HeaderPaddingStyle.Width(width).Render(line) + "\n"
}
