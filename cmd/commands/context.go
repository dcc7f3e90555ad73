package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pluqqy/drivepad/internal/cli"
	"github.com/pluqqy/drivepad/pkg/storage"
)

// Globals are bound to the root command's persistent flags
var Globals cli.GlobalOptions

// connect signs in and returns a facade; tests swap it for a memory one
var connect = func(ctx context.Context, cc *cli.CommandContext) (storage.Facade, error) {
	return cc.Connect(ctx)
}

// AddGlobalFlags registers the shared flags on root and pushes the output
// switches into the cli helpers before any command runs
func AddGlobalFlags(root *cobra.Command) {
	cli.AddGlobalFlags(root, &Globals)
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cli.SetGlobalFlags(Globals.Quiet, Globals.NoColor, false)
		return cli.ValidateOutputFormat(outputFormat(cmd))
	}
}

// newCommandContext loads settings and sets up logging for a one-shot command
func newCommandContext() (*cli.CommandContext, error) {
	cc, err := cli.NewCommandContext(Globals)
	if err != nil {
		return nil, err
	}
	if err := cc.SetupLogging(false); err != nil {
		return nil, err
	}
	return cc, nil
}

// connectFacade is the common prologue of the remote-file commands
func connectFacade(cmd *cobra.Command) (storage.Facade, error) {
	cc, err := newCommandContext()
	if err != nil {
		return nil, err
	}
	return connect(cmd.Context(), cc)
}

func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		return string(cli.FormatText)
	}
	return format
}
