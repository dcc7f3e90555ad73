package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for read-only badge
	ColorSuccess  = "28"  // Green for read-write badge
	ColorWhite    = "255"
	ColorDark     = "235"
	ColorStatusBg = "62"
	ColorStatusFg = "230"
)

var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	HeaderPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorStatusBg)).
			Foreground(lipgloss.Color(ColorStatusFg)).
			Padding(0, 1)

	// Help border style (always inactive looking)
	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))
)

// GetModeBadgeStyle colors the mode badge: green when editable, orange
// when locked
func GetModeBadgeStyle(readWrite bool) lipgloss.Style {
	if readWrite {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(ColorSuccess)).
			Foreground(lipgloss.Color(ColorWhite)).
			Padding(0, 1).
			Bold(true)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(ColorWarning)).
		Foreground(lipgloss.Color(ColorDark)).
		Padding(0, 1).
		Bold(true)
}

func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

func GetActiveColonStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color))
}

func GetPaneBorderStyle(isActive bool) lipgloss.Style {
	if isActive {
		return ActiveBorderStyle
	}
	return InactiveBorderStyle
}
