package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/drivepad/pkg/storage"
)

// newFilePicker builds a picker from the facade's launcher descriptor
func newFilePicker(intent storage.PickerIntent, height int) filepicker.Model {
	fp := filepicker.New()

	dir := intent.StartDir
	if dir == "" || dir == "." {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	fp.CurrentDirectory = dir
	fp.AllowedTypes = append([]string(nil), intent.AllowedTypes...)
	fp.ShowHidden = intent.ShowHidden
	fp.DirAllowed = false
	fp.FileAllowed = true

	if height > 0 {
		fp, _ = fp.Update(pickerSizeMsg(0, height))
	}
	return fp
}

// filepicker subtracts its own bottom margin from the window height when
// AutoHeight is on
const pickerMarginBottom = 5

// pickerSizeMsg sizes the picker to the pane it is drawn in
func pickerSizeMsg(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: width, Height: pickerHeight(height) + pickerMarginBottom}
}

func pickerHeight(height int) int {
	h := height - headerHeight - 8
	if h < 5 {
		return 5
	}
	return h
}
