package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/drivepad/pkg/files"
	"github.com/pluqqy/drivepad/pkg/models"
	"github.com/pluqqy/drivepad/pkg/storage"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"drive backend", ValidateBackend("drive"), false},
		{"memory backend", ValidateBackend("memory"), false},
		{"unknown backend", ValidateBackend("s3"), true},
		{"text format", ValidateOutputFormat("text"), false},
		{"yaml format", ValidateOutputFormat("yaml"), false},
		{"unknown format", ValidateOutputFormat("xml"), true},
		{"plain id", ValidateFileID("1AbC-x_9"), false},
		{"empty id", ValidateFileID("  "), true},
		{"id with slash", ValidateFileID("a/b"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr {
				assert.Error(t, tt.err)
			} else {
				assert.NoError(t, tt.err)
			}
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	assert.NoError(t, ValidateFilePath(path))
	assert.ErrorContains(t, ValidateFilePath(dir), "is a directory")
	assert.ErrorContains(t, ValidateFilePath(filepath.Join(dir, "missing.txt")), "does not exist")
}

type greeting struct {
	Name string `json:"name" yaml:"name"`
}

func (g greeting) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "hello %s\n", g.Name)
	return err
}

func TestOutputResults(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		data    interface{}
		want    string
		wantErr string
	}{
		{"json", "json", []models.RemoteFile{{ID: "A", Name: "a.txt"}}, `"id": "A"`, ""},
		{"yaml", "yaml", []models.RemoteFile{{ID: "A", Name: "a.txt"}}, "  name: a.txt", ""},
		{"text uses the renderer", "text", greeting{Name: "drive"}, "hello drive\n", ""},
		{"text without a renderer", "text", []string{"x"}, "", "has no text form"},
		{"unknown format", "xml", greeting{}, "", "unsupported output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := OutputResults(&buf, tt.format, tt.data)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []string{"ID", "NAME"}, [][]string{
		{"A", "a.txt"},
		{"LONGER", "b.txt"},
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID      NAME", lines[0])
	assert.Equal(t, "--      ----", lines[1])
	assert.Equal(t, "A       a.txt", lines[2])
	assert.Equal(t, "LONGER  b.txt", lines[3])
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abcdefg...", TruncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestConfirm(t *testing.T) {
	defer SetOutput(os.Stdin, os.Stderr)
	defer SetGlobalFlags(false, false, false)

	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		var prompt bytes.Buffer
		SetOutput(strings.NewReader(tt.input), &prompt)

		got, err := Confirm("Overwrite?", tt.defaultYes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, prompt.String(), "Overwrite?")
	}

	SetGlobalFlags(false, false, true)
	got, err := Confirm("Overwrite?", false)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestPrintHelpers(t *testing.T) {
	defer SetOutput(os.Stdin, os.Stderr)
	defer SetGlobalFlags(false, false, false)

	var buf bytes.Buffer
	SetOutput(os.Stdin, &buf)

	SetGlobalFlags(false, true, false)
	PrintSuccess("saved %s", "F1")
	PrintError("failed")
	assert.Equal(t, "OK: saved F1\nERROR: failed\n", buf.String())

	buf.Reset()
	SetGlobalFlags(true, false, false)
	PrintInfo("hidden")
	PrintSuccess("hidden")
	assert.Empty(t, buf.String())
}

func TestNewCommandContextOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	settings := models.DefaultSettings()
	settings.Log.Level = "warn"
	require.NoError(t, files.WriteSettings(configPath, settings))

	cc, err := NewCommandContext(GlobalOptions{
		ConfigPath: configPath,
		Backend:    "memory",
		LogFile:    "/tmp/drivepad-test.log",
	})
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cc.Settings.Backend)
	assert.Equal(t, "warn", cc.Settings.Log.Level)
	assert.Equal(t, "/tmp/drivepad-test.log", cc.Settings.Log.File)
}

func TestNewCommandContextRejectsUnknownBackend(t *testing.T) {
	_, err := NewCommandContext(GlobalOptions{
		ConfigPath: filepath.Join(t.TempDir(), "settings.yaml"),
		Backend:    "ftp",
	})
	assert.ErrorContains(t, err, "invalid backend")
}

func TestSetupLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "drivepad.log")
	cc, err := NewCommandContext(GlobalOptions{
		ConfigPath: filepath.Join(t.TempDir(), "settings.yaml"),
		LogFile:    logFile,
		LogLevel:   "debug",
	})
	require.NoError(t, err)

	require.NoError(t, cc.SetupLogging(true))
	assert.DirExists(t, filepath.Dir(logFile))

	cc.Settings.Log.Level = "loud"
	assert.Error(t, cc.SetupLogging(false))
}

func TestConnectMemoryBackend(t *testing.T) {
	cc, err := NewCommandContext(GlobalOptions{
		ConfigPath: filepath.Join(t.TempDir(), "settings.yaml"),
		Backend:    "memory",
	})
	require.NoError(t, err)

	ctx := context.Background()
	facade, err := cc.Connect(ctx)
	require.NoError(t, err)

	id, err := facade.CreateFile(ctx)
	require.NoError(t, err)

	// A second connection shares the same in-process store
	again, err := cc.Connect(ctx)
	require.NoError(t, err)
	doc, err := again.ReadFile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Untitled file", doc.Name)

	_, ok := facade.(*storage.MemoryFacade)
	assert.True(t, ok)
}

func TestConnectDriveBackendNeedsCredentials(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Auth.CredentialsFile = filepath.Join(t.TempDir(), "missing.json")
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, files.WriteSettings(configPath, settings))

	cc, err := NewCommandContext(GlobalOptions{ConfigPath: configPath})
	require.NoError(t, err)

	_, err = cc.Connect(context.Background())
	assert.ErrorContains(t, err, "failed to read client secret")
}
