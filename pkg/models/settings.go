package models

// Settings represents the application configuration
type Settings struct {
	Auth    AuthSettings   `yaml:"auth"`
	Backend string         `yaml:"backend"` // "drive" or "memory"
	Picker  PickerSettings `yaml:"picker"`
	Drive   DriveSettings  `yaml:"drive"`
	UI      UISettings     `yaml:"ui"`
	Log     LogSettings    `yaml:"log"`
}

// AuthSettings controls the OAuth sign-in flow
type AuthSettings struct {
	// Path to the installed-app client secret downloaded from the Google
	// Cloud console.
	CredentialsFile string `yaml:"credentials_file"`
	OpenBrowser     bool   `yaml:"open_browser"`
	// Seconds to wait for the user to finish the consent screen.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// PickerSettings controls the file picker
type PickerSettings struct {
	StartDir     string   `yaml:"start_dir"`
	AllowedTypes []string `yaml:"allowed_types"`
	ShowHidden   bool     `yaml:"show_hidden"`
}

// DriveSettings controls the Drive REST client
type DriveSettings struct {
	Endpoint      string `yaml:"endpoint,omitempty"`
	NewFileName   string `yaml:"new_file_name"`
	MimeType      string `yaml:"mime_type"`
	QueryPageSize int64  `yaml:"query_page_size"`
}

// UISettings controls UI preferences
type UISettings struct {
	FileListTitle   string `yaml:"file_list_title"`
	ShowLineNumbers bool   `yaml:"show_line_numbers"`
}

// LogSettings controls where diagnostics go
type LogSettings struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	Format string `yaml:"format"` // "plaintext", "json" or "color"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Auth: AuthSettings{
			CredentialsFile: "credentials.json",
			OpenBrowser:     true,
			TimeoutSeconds:  300,
		},
		Backend: "drive",
		Picker: PickerSettings{
			StartDir:     ".",
			AllowedTypes: []string{".txt", ".md", ".text"},
		},
		Drive: DriveSettings{
			NewFileName:   "Untitled file",
			MimeType:      "text/plain",
			QueryPageSize: 100,
		},
		UI: UISettings{
			FileListTitle:   "File List",
			ShowLineNumbers: false,
		},
		Log: LogSettings{
			Level:  "info",
			File:   "",
			Format: "plaintext",
		},
	}
}
