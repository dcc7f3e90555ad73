package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/drivepad/pkg/models"
)

func TestLocatorFromPath(t *testing.T) {
	dir := t.TempDir()
	locator, err := LocatorFromPath(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(locator, "file:///"), "got %q", locator)
	assert.True(t, strings.HasSuffix(locator, "/notes.txt"), "got %q", locator)
	assert.True(t, IsLocator(locator))
	assert.False(t, IsLocator(filepath.Join(dir, "notes.txt")))
}

func TestReadLocatorLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shopping list.txt")
	require.NoError(t, os.WriteFile(path, []byte("eggs\nmilk"), 0644))

	locator, err := LocatorFromPath(path)
	require.NoError(t, err)

	doc, err := ReadLocator(context.Background(), locator)
	require.NoError(t, err)
	assert.Equal(t, "shopping list.txt", doc.Name)
	assert.Equal(t, "eggs\nmilk", doc.Content)
}

func TestReadLocatorMissingFile(t *testing.T) {
	locator, err := LocatorFromPath(filepath.Join(t.TempDir(), "gone.txt"))
	require.NoError(t, err)

	_, err = ReadLocator(context.Background(), locator)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadLocatorBadURI(t *testing.T) {
	_, err := ReadLocator(context.Background(), "")
	assert.ErrorIs(t, err, ErrFailure)

	_, err = ReadLocator(context.Background(), "nosuchscheme://host/file.txt")
	assert.ErrorIs(t, err, ErrFailure)
}

func TestReadLocatorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadLocator(ctx, "file:///tmp/whatever.txt")
	assert.ErrorIs(t, err, ErrFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewPickerIntent(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Picker.StartDir = "/srv"
	settings.Picker.ShowHidden = true

	intent := NewPickerIntent(settings)
	assert.Equal(t, "/srv", intent.StartDir)
	assert.True(t, intent.ShowHidden)
	assert.Equal(t, settings.Picker.AllowedTypes, intent.AllowedTypes)

	// The descriptor must not alias the settings slice
	intent.AllowedTypes[0] = ".bin"
	assert.NotEqual(t, ".bin", settings.Picker.AllowedTypes[0])
}
