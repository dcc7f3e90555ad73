// Package storage defines the narrow facade the editor uses to reach remote
// file storage, along with a Google Drive implementation and an in-memory
// one.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/pluqqy/drivepad/pkg/models"
)

var (
	// ErrFailure is the single failure reason reported by every facade call.
	ErrFailure = errors.New("storage operation failed")

	// ErrNotFound is returned when a file id or locator does not resolve.
	ErrNotFound = fmt.Errorf("%w: not found", ErrFailure)
)

// Facade groups every remote-storage operation the editor uses. All methods
// block until the operation completes; callers that need asynchrony run
// them off the UI loop.
type Facade interface {
	// PickerIntent describes how the file picker should be launched.
	PickerIntent() PickerIntent

	// OpenViaPicker reads the name and body of a picker selection through
	// the storage layer, not the REST API.
	OpenViaPicker(ctx context.Context, locator string) (*models.Document, error)

	// CreateFile creates a new empty remote file and returns its id.
	CreateFile(ctx context.Context) (string, error)

	ReadFile(ctx context.Context, id string) (*models.Document, error)
	SaveFile(ctx context.Context, id, name, content string) error

	// QueryFiles lists the remote files visible to this application.
	QueryFiles(ctx context.Context) ([]models.RemoteFile, error)
}

// Builder binds an authenticated account to a facade for the rest of the
// process lifetime.
type Builder func(ctx context.Context, account *models.Account) (Facade, error)

// Names returns the display names of files, in order
func Names(files []models.RemoteFile) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}
