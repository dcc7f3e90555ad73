package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/pluqqy/drivepad/pkg/auth"
	"github.com/pluqqy/drivepad/pkg/files"
	"github.com/pluqqy/drivepad/pkg/models"
	"github.com/pluqqy/drivepad/pkg/storage"
)

const (
	BackendDrive  = "drive"
	BackendMemory = "memory"
)

// memoryAccount is the identity used when running without a network
var memoryAccount = models.Account{Email: "offline@drivepad.local"}

// GlobalOptions holds the flags shared by every command
type GlobalOptions struct {
	ConfigPath string
	Backend    string
	LogLevel   string
	LogFile    string
	Output     string
	Quiet      bool
	NoColor    bool
}

// AddGlobalFlags registers the shared flags on the root command
func AddGlobalFlags(cmd *cobra.Command, opts *GlobalOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "Settings file (default is the user config dir)")
	flags.StringVar(&opts.Backend, "backend", "", "Storage backend: drive or memory")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	flags.StringVarP(&opts.Output, "output", "o", string(FormatText), "Output format: text, json, yaml")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable symbols in output")
}

// CommandContext resolves settings and builds the collaborators a command
// needs
type CommandContext struct {
	Options    GlobalOptions
	ConfigPath string
	Settings   *models.Settings

	memory *storage.MemoryFacade
}

// NewCommandContext loads settings and applies flag overrides
func NewCommandContext(opts GlobalOptions) (*CommandContext, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		path, err := files.DefaultSettingsPath()
		if err != nil {
			return nil, err
		}
		configPath = path
	}

	c := &CommandContext{
		Options:    opts,
		ConfigPath: configPath,
	}
	c.LoadSettingsWithDefault()

	if opts.Backend != "" {
		c.Settings.Backend = opts.Backend
	}
	if opts.LogLevel != "" {
		c.Settings.Log.Level = opts.LogLevel
	}
	if opts.LogFile != "" {
		c.Settings.Log.File = opts.LogFile
	}

	if err := ValidateBackend(c.Settings.Backend); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings(c.ConfigPath)
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// SetupLogging configures the drivepad logger. The TUI owns the terminal,
// so in interactive mode logs always go to a file.
func (c *CommandContext) SetupLogging(interactive bool) error {
	if _, err := logging.LevelFromString(c.Settings.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Settings.Log.Level, err)
	}

	// Libraries stay at error level; only our subsystem follows the setting
	cfg := logging.Config{
		Format: logFormat(c.Settings.Log.Format),
		Level:  logging.LevelError,
		Stderr: !interactive,
		File:   c.Settings.Log.File,
	}

	if interactive {
		if cfg.File == "" {
			path, err := files.DefaultLogPath()
			if err != nil {
				return err
			}
			cfg.File = path
		}
		cfg.Format = logging.PlaintextOutput
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	logging.SetupLogging(cfg)
	return logging.SetLogLevel("drivepad", c.Settings.Log.Level)
}

func logFormat(format string) logging.LogFormat {
	switch strings.ToLower(format) {
	case "json":
		return logging.JSONOutput
	case "color", "colorized":
		return logging.ColorizedOutput
	default:
		return logging.PlaintextOutput
	}
}

// Authenticator returns the sign-in flow for the configured backend
func (c *CommandContext) Authenticator() (auth.Authenticator, error) {
	if c.Settings.Backend == BackendMemory {
		account := memoryAccount
		return &auth.StaticAuthenticator{Account: &account}, nil
	}
	return auth.NewOAuthAuthenticator(c.Settings)
}

// Builder returns the facade builder for the configured backend
func (c *CommandContext) Builder() storage.Builder {
	if c.Settings.Backend == BackendMemory {
		if c.memory == nil {
			c.memory = storage.NewMemoryFacade(storage.DriveOptions{
				NewFileName: c.Settings.Drive.NewFileName,
				MimeType:    c.Settings.Drive.MimeType,
				Picker:      storage.NewPickerIntent(c.Settings),
			})
		}
		return storage.NewMemoryBuilder(c.memory)
	}
	return storage.NewDriveBuilder(c.Settings)
}

// Connect signs in and builds a facade in one step, for one-shot commands
func (c *CommandContext) Connect(ctx context.Context) (storage.Facade, error) {
	authenticator, err := c.Authenticator()
	if err != nil {
		return nil, err
	}

	account, err := authenticator.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	facade, err := c.Builder()(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to build storage client: %w", err)
	}
	return facade, nil
}
