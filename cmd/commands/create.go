package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/drivepad/internal/cli"
)

// NewCreateCommand creates the create command
func NewCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty remote file",
		Long: `Create an empty plain-text file in the root folder and print its id.

The new file is read back right after creation, exactly as the editor does
before opening it for editing.

Examples:
  # Create a file and capture its id
  id=$(drivepad create)

  # Show the created file as YAML
  drivepad create -o yaml`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	facade, err := connectFacade(cmd)
	if err != nil {
		return err
	}

	id, err := facade.CreateFile(ctx)
	if err != nil {
		return fmt.Errorf("couldn't create file: %w", err)
	}

	doc, err := facade.ReadFile(ctx, id)
	if err != nil {
		return fmt.Errorf("created file %s but couldn't read it: %w", id, err)
	}

	if outputFormat(cmd) == string(cli.FormatText) {
		cli.PrintSuccess("Created %q", doc.Name)
	}
	return cli.OutputResults(cmd.OutOrStdout(), outputFormat(cmd), CreateResult{newFileResult(id, doc, false)})
}
