package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateBackend validates the storage backend name
func ValidateBackend(backend string) error {
	if Contains([]string{BackendDrive, BackendMemory}, backend) {
		return nil
	}
	return fmt.Errorf("invalid backend: %s (must be: drive or memory)", backend)
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateFileID validates a remote file identifier
func ValidateFileID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("file id cannot be empty")
	}

	invalidChars := []string{"/", "\\", "?", "#", " "}
	for _, char := range invalidChars {
		if strings.Contains(id, char) {
			return fmt.Errorf("file id contains invalid character: %q", char)
		}
	}

	return nil
}

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
