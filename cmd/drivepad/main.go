package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/drivepad/cmd/commands"
	"github.com/pluqqy/drivepad/internal/cli"
	"github.com/pluqqy/drivepad/pkg/files"
	"github.com/pluqqy/drivepad/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "drivepad",
	Short: "Terminal editor for plain-text files in Google Drive",
	Long: `drivepad edits plain-text files stored in Google Drive from the terminal.
It signs in with per-file access, so it only sees files it created or that
you opened with it. Run it without arguments to start the editor.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := cli.NewCommandContext(commands.Globals)
		if err != nil {
			return err
		}
		if err := cc.SetupLogging(true); err != nil {
			return err
		}

		authenticator, err := cc.Authenticator()
		if err != nil {
			return fmt.Errorf("%w\nRun 'drivepad init' and point auth.credentials_file at your OAuth client secret, or use --backend memory", err)
		}

		tui.Version = version
		app := tui.NewApp(tui.EditorOptions{
			Authenticator: authenticator,
			Builder:       cc.Builder(),
			Settings:      cc.Settings,
		})

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default settings",
	Long:  `Creates the settings file with default values if it does not exist yet`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cc, err := cli.NewCommandContext(commands.Globals)
		if err != nil {
			return err
		}

		created, err := files.InitSettings(cc.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to write settings: %w", err)
		}
		if !created {
			cli.PrintInfo("Settings already exist at %s", cc.ConfigPath)
			return nil
		}

		cli.PrintSuccess("Created %s", cc.ConfigPath)
		cli.PrintInfo("Set auth.credentials_file to your OAuth client secret, then run 'drivepad'")
		if tip := tui.GetTerminalSetupMessage(); tip != "" {
			cli.PrintInfo("%s", tip)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of drivepad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "drivepad version %s\n", version)
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewReadCommand())
	rootCmd.AddCommand(commands.NewSaveCommand())
	rootCmd.AddCommand(commands.NewQueryCommand())
	rootCmd.AddCommand(commands.NewOpenCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
