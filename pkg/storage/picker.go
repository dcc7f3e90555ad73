package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/c2fo/vfs/v7/vfssimple"

	"github.com/pluqqy/drivepad/pkg/models"
)

// PickerIntent is the launcher descriptor handed to the file picker. Only
// the picker interprets it.
type PickerIntent struct {
	StartDir     string
	AllowedTypes []string
	MimeType     string
	ShowHidden   bool
}

// NewPickerIntent builds a picker descriptor from settings
func NewPickerIntent(settings *models.Settings) PickerIntent {
	return PickerIntent{
		StartDir:     settings.Picker.StartDir,
		AllowedTypes: append([]string(nil), settings.Picker.AllowedTypes...),
		MimeType:     settings.Drive.MimeType,
		ShowHidden:   settings.Picker.ShowHidden,
	}
}

// LocatorFromPath turns a local path into a file:// locator
func LocatorFromPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	u := url.URL{Scheme: "file", Path: p}
	return u.String(), nil
}

// IsLocator reports whether s already carries a scheme
func IsLocator(s string) bool {
	return strings.Contains(s, "://")
}

// ReadLocator resolves a locator through vfs and reads its name and body.
// Any scheme with a registered vfs backend works (file, mem, s3, gs, ...).
func ReadLocator(ctx context.Context, locator string) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", locator, ErrFailure, err)
	}

	file, err := vfssimple.NewFile(locator)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", locator, ErrFailure, err)
	}
	defer file.Close()

	exists, err := file.Exists()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %w", locator, ErrFailure, err)
	}
	if !exists {
		return nil, fmt.Errorf("open %s: %w", locator, ErrNotFound)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", locator, ErrFailure, err)
	}

	return &models.Document{
		Name:    file.Name(),
		Content: string(content),
	}, nil
}
