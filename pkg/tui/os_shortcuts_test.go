package tui

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetOS(t *testing.T) {
	os := GetOS()

	switch runtime.GOOS {
	case "darwin":
		if os != OSMac {
			t.Errorf("Expected OSMac for darwin, got %v", os)
		}
	case "linux":
		if os != OSLinux {
			t.Errorf("Expected OSLinux for linux, got %v", os)
		}
	case "windows":
		if os != OSWindows {
			t.Errorf("Expected OSWindows for windows, got %v", os)
		}
	default:
		if os != OSUnknown {
			t.Errorf("Expected OSUnknown for %s, got %v", runtime.GOOS, os)
		}
	}
}

func TestShortcutKeyGetFor(t *testing.T) {
	save := ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s",
		Windows: "alt+s",
		Default: "ctrl+s",
	}

	tests := []struct {
		name     string
		shortcut ShortcutKey
		os       OSType
		want     string
	}{
		{"Mac specific shortcut", save, OSMac, "ctrl+s"},
		{"Linux specific shortcut", save, OSLinux, "alt+s"},
		{"Windows specific shortcut", save, OSWindows, "alt+s"},
		{"Unknown OS uses default", save, OSUnknown, "ctrl+s"},
		{"Default only shortcut", ShortcutKey{Default: "ctrl+o"}, OSLinux, "ctrl+o"},
		{"Falls back to default when OS-specific not set", ShortcutKey{Linux: "", Default: "esc"}, OSLinux, "esc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shortcut.getFor(tt.os); got != tt.want {
				t.Errorf("getFor(%v) = %q, want %q", tt.os, got, tt.want)
			}
		})
	}
}

func TestShortcutKeyMatchesDefaultEverywhere(t *testing.T) {
	if !Shortcuts.Save.Matches("ctrl+s") {
		t.Error("ctrl+s should always trigger save")
	}
	if !Shortcuts.Save.Matches(Shortcuts.Save.Get()) {
		t.Error("OS-specific save binding should trigger save")
	}
	if Shortcuts.Save.Matches("ctrl+o") {
		t.Error("ctrl+o should not trigger save")
	}
}

func TestActualShortcuts(t *testing.T) {
	shortcuts := []struct {
		name string
		key  ShortcutKey
	}{
		{"Open", Shortcuts.Open},
		{"Create", Shortcuts.Create},
		{"Save", Shortcuts.Save},
		{"Query", Shortcuts.Query},
		{"Copy", Shortcuts.Copy},
		{"SwitchField", Shortcuts.SwitchField},
		{"Cancel", Shortcuts.Cancel},
		{"Quit", Shortcuts.Quit},
	}

	seen := make(map[string]string)
	for _, s := range shortcuts {
		t.Run(s.name, func(t *testing.T) {
			got := s.key.Get()
			if got == "" {
				t.Errorf("%s shortcut returned empty string", s.name)
			}
			if other, ok := seen[got]; ok {
				t.Errorf("%s shortcut %q collides with %s", s.name, got, other)
			}
			seen[got] = s.name
		})
	}
}

func TestFormatShortcutForHelp(t *testing.T) {
	if got := FormatShortcutForHelp("ctrl+s"); got != "^s" {
		t.Errorf("expected ^s, got %q", got)
	}
	if got := FormatShortcutForHelp("shift+tab"); got != "⇧tab" {
		t.Errorf("expected ⇧tab, got %q", got)
	}
	if got := FormatShortcutForHelp("esc"); got != "esc" {
		t.Errorf("expected esc, got %q", got)
	}

	got := FormatShortcutForHelp("alt+s")
	switch GetOS() {
	case OSLinux, OSWindows:
		if got != "M-s" {
			t.Errorf("expected M-s, got %q", got)
		}
	default:
		if got != "⌥s" {
			t.Errorf("expected ⌥s, got %q", got)
		}
	}
}

func TestGetShortcutHelp(t *testing.T) {
	help := GetShortcutHelp("open", Shortcuts.Open)
	if help != "^o open" {
		t.Errorf("expected %q, got %q", "^o open", help)
	}

	help = GetShortcutHelp("save", Shortcuts.Save)
	if !strings.HasSuffix(help, "save") && !strings.Contains(help, "save (") {
		t.Errorf("unexpected save help %q", help)
	}
}
