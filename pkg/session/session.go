// Package session holds the state the editor carries between actions: the
// storage facade, once sign-in has completed, and the id of the file open
// for editing.
package session

import (
	"github.com/pluqqy/drivepad/pkg/models"
	"github.com/pluqqy/drivepad/pkg/storage"
)

// Session is owned by the editor and only touched from its update loop.
type Session struct {
	facade     storage.Facade
	account    *models.Account
	openFileID string
}

func New() *Session {
	return &Session{}
}

// Ready reports whether sign-in has completed and a facade is available
func (s *Session) Ready() bool {
	return s.facade != nil
}

func (s *Session) SetFacade(facade storage.Facade, account *models.Account) {
	s.facade = facade
	s.account = account
}

func (s *Session) Facade() storage.Facade {
	return s.facade
}

func (s *Session) Account() *models.Account {
	return s.account
}

// OpenFileID returns the id of the file open for editing, if any
func (s *Session) OpenFileID() (string, bool) {
	return s.openFileID, s.openFileID != ""
}

// Mode is read-write exactly when a file id is open
func (s *Session) Mode() models.EditorMode {
	if s.openFileID != "" {
		return models.ModeReadWrite
	}
	return models.ModeReadOnly
}

// Open switches to read-write mode on id
func (s *Session) Open(id string) {
	s.openFileID = id
}

// Clear drops the open file id, switching to read-only mode
func (s *Session) Clear() {
	s.openFileID = ""
}

// CanSave reports whether a save would reach the facade
func (s *Session) CanSave() bool {
	return s.facade != nil && s.openFileID != ""
}
