package tui

import (
	"github.com/pluqqy/drivepad/pkg/models"
)

// Completions of facade calls. Each is delivered to EditorModel.Update on
// the program loop.

type signInResultMsg struct {
	account *models.Account
	err     error
}

type pickerFileOpenedMsg struct {
	locator string
	doc     *models.Document
	err     error
}

type fileCreatedMsg struct {
	id  string
	err error
}

type fileReadMsg struct {
	id  string
	doc *models.Document
	err error
}

type fileSavedMsg struct {
	id  string
	err error
}

type queryResultMsg struct {
	files []models.RemoteFile
	err   error
}

type clipboardCopiedMsg struct {
	err error
}
