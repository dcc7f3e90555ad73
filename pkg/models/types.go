package models

import "golang.org/x/oauth2"

// Document is the name and body of a file as shown in the editor
type Document struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

// RemoteFile is a single entry returned by a file listing
type RemoteFile struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// EditorMode describes whether the editor fields accept input
type EditorMode int

const (
	ModeReadOnly EditorMode = iota
	ModeReadWrite
)

func (m EditorMode) String() string {
	switch m {
	case ModeReadWrite:
		return "read-write"
	default:
		return "read-only"
	}
}

// Account is an authenticated user session
type Account struct {
	Email string
	Token *oauth2.Token
	// Source refreshes Token when set
	Source oauth2.TokenSource
}

// TokenSource returns the refreshing source if there is one, otherwise a
// source that always yields Token
func (a *Account) TokenSource() oauth2.TokenSource {
	if a.Source != nil {
		return a.Source
	}
	return oauth2.StaticTokenSource(a.Token)
}
