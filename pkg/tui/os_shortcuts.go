package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.getFor(GetOS())
}

func (s ShortcutKey) getFor(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Matches reports whether key triggers the shortcut. The default binding
// is always accepted alongside the OS-specific one.
func (s ShortcutKey) Matches(key string) bool {
	return key == s.Get() || key == s.Default
}

// GetWithWarning returns the shortcut and a warning if there are known issues
func (s ShortcutKey) GetWithWarning() (shortcut string, warning string) {
	os := GetOS()
	shortcut = s.Get()

	switch os {
	case OSLinux:
		switch shortcut {
		case "^s", "ctrl+s":
			warning = "(may need: stty -ixon)"
		case "^z", "ctrl+z":
			warning = "(caution: suspends process)"
		}
	case OSWindows:
		switch shortcut {
		case "shift+tab", "backtab":
			warning = "(terminal dependent)"
		}
	}

	return shortcut, warning
}

// Shortcuts contains every editor shortcut with OS-specific variations
var Shortcuts = struct {
	Open        ShortcutKey
	Create      ShortcutKey
	Save        ShortcutKey
	Query       ShortcutKey
	Copy        ShortcutKey
	SwitchField ShortcutKey
	Cancel      ShortcutKey
	Quit        ShortcutKey
}{
	Open: ShortcutKey{
		Default: "ctrl+o",
	},
	Create: ShortcutKey{
		Default: "ctrl+n",
	},
	Save: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // Avoid Ctrl+S terminal conflict (XOFF)
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	Query: ShortcutKey{
		Mac:     "ctrl+l",
		Linux:   "alt+l", // Avoid clear screen
		Windows: "alt+l",
		Default: "ctrl+l",
	},
	Copy: ShortcutKey{
		Default: "ctrl+y",
	},
	SwitchField: ShortcutKey{
		Default: "tab",
	},
	Cancel: ShortcutKey{
		Default: "esc",
	},
	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
}

// GetShortcutHelp returns formatted help text for a shortcut
func GetShortcutHelp(name string, key ShortcutKey) string {
	shortcut, warning := key.GetWithWarning()
	shortcut = FormatShortcutForHelp(shortcut)
	if warning != "" {
		return shortcut + " " + name + " " + warning
	}
	return shortcut + " " + name
}

// GetTerminalSetupMessage returns OS-specific terminal setup instructions
func GetTerminalSetupMessage() string {
	switch GetOS() {
	case OSLinux:
		return "TIP: Run 'stty -ixon' to enable Ctrl+S in your terminal"
	case OSWindows:
		return "TIP: For best experience, use Windows Terminal or PowerShell"
	default:
		return ""
	}
}

// FormatShortcutForHelp converts a key binding to its help-text form
func FormatShortcutForHelp(shortcut string) string {
	// Use M- prefix for Alt on Linux/Windows (common terminal convention)
	if GetOS() == OSLinux || GetOS() == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")
	return shortcut
}
