// Package auth signs the user in to Google with the per-file Drive scope.
package auth

import (
	"context"
	"errors"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"google.golang.org/api/drive/v3"

	"github.com/pluqqy/drivepad/pkg/models"
)

var log = logging.Logger("drivepad")

// ErrAuthFailure wraps every sign-in failure
var ErrAuthFailure = errors.New("authentication failed")

// Scopes requested at sign-in: per-file Drive access plus basic profile.
var Scopes = []string{
	drive.DriveFileScope,
	"email",
	"profile",
}

// Authenticator runs an external, user-facing consent flow
type Authenticator interface {
	Authenticate(ctx context.Context) (*models.Account, error)
}

// StaticAuthenticator returns a fixed result without any user interaction.
// It backs the offline memory backend.
type StaticAuthenticator struct {
	Account *models.Account
	Err     error
}

func (s *StaticAuthenticator) Authenticate(ctx context.Context) (*models.Account, error) {
	if s.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthFailure, s.Err)
	}
	if s.Account == nil {
		return nil, fmt.Errorf("%w: no account configured", ErrAuthFailure)
	}
	return s.Account, nil
}
