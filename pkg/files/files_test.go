package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pluqqy/drivepad/pkg/models"
)

func TestReadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", SettingsFileName)

	settings, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	defaults := models.DefaultSettings()
	if settings.UI.FileListTitle != defaults.UI.FileListTitle {
		t.Errorf("Expected default title %q, got %q", defaults.UI.FileListTitle, settings.UI.FileListTitle)
	}
	if settings.Backend != "drive" {
		t.Errorf("Expected backend %q, got %q", "drive", settings.Backend)
	}
}

func TestReadWriteSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), AppDir, SettingsFileName)

	settings := models.DefaultSettings()
	settings.Backend = "memory"
	settings.Picker.StartDir = "/srv/notes"
	settings.Log.Level = "debug"

	if err := WriteSettings(path, settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	loaded, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	if loaded.Backend != "memory" {
		t.Errorf("Expected backend %q, got %q", "memory", loaded.Backend)
	}
	if loaded.Picker.StartDir != "/srv/notes" {
		t.Errorf("Expected start dir %q, got %q", "/srv/notes", loaded.Picker.StartDir)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("Expected log level %q, got %q", "debug", loaded.Log.Level)
	}
}

func TestReadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	content := "backend: memory\nui:\n  show_line_numbers: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	settings, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	if settings.Backend != "memory" {
		t.Errorf("Expected backend %q, got %q", "memory", settings.Backend)
	}
	if !settings.UI.ShowLineNumbers {
		t.Error("Expected show_line_numbers to be true")
	}
	if settings.UI.FileListTitle != "File List" {
		t.Errorf("Expected default file list title, got %q", settings.UI.FileListTitle)
	}
	if settings.Drive.MimeType != "text/plain" {
		t.Errorf("Expected default mime type, got %q", settings.Drive.MimeType)
	}
}

func TestReadSettingsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	if err := os.WriteFile(path, []byte("backend: [unterminated"), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	if _, err := ReadSettings(path); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestInitSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), AppDir, SettingsFileName)

	created, err := InitSettings(path)
	if err != nil {
		t.Fatalf("InitSettings failed: %v", err)
	}
	if !created {
		t.Error("Expected settings file to be created")
	}

	// Second call must not overwrite
	if err := os.WriteFile(path, []byte("backend: memory\n"), 0644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}
	created, err = InitSettings(path)
	if err != nil {
		t.Fatalf("InitSettings failed: %v", err)
	}
	if created {
		t.Error("Expected existing settings file to be left alone")
	}

	settings, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.Backend != "memory" {
		t.Errorf("Expected backend %q, got %q", "memory", settings.Backend)
	}
}
