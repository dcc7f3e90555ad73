package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/drivepad/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	AppDir           = "drivepad"
	SettingsFileName = "settings.yaml"
	LogFileName      = "drivepad.log"
)

// DefaultSettingsPath returns the per-user settings location, e.g.
// ~/.config/drivepad/settings.yaml on Linux
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, SettingsFileName), nil
}

// DefaultLogPath returns the log file used while the TUI owns the terminal
func DefaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user cache directory: %w", err)
	}
	return filepath.Join(dir, AppDir, LogFileName), nil
}

// ReadSettings loads settings from path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}

	return settings, nil
}

func WriteSettings(path string, settings *models.Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}

// InitSettings writes the default settings to path unless a file already
// exists there. It reports whether a new file was created.
func InitSettings(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat settings %s: %w", path, err)
	}

	if err := WriteSettings(path, models.DefaultSettings()); err != nil {
		return false, err
	}
	return true, nil
}
