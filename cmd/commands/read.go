package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/drivepad/internal/cli"
	"github.com/pluqqy/drivepad/pkg/models"
)

var readShowMetadata bool

// NewReadCommand creates the read command
func NewReadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <file-id>",
		Short: "Print a remote file",
		Long: `Download a remote file and print its content.

Examples:
  # Print the content of a file
  drivepad read 1AbCdEf

  # Include the file name
  drivepad read 1AbCdEf --metadata

  # Output as JSON
  drivepad read 1AbCdEf -o json`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateFileID(args[0])
		},
		RunE: runRead,
	}

	cmd.Flags().BoolVarP(&readShowMetadata, "metadata", "m", false, "Show file name and id")

	return cmd
}

func runRead(cmd *cobra.Command, args []string) error {
	id := args[0]

	facade, err := connectFacade(cmd)
	if err != nil {
		return err
	}

	doc, err := facade.ReadFile(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("couldn't read file %s: %w", id, err)
	}

	return outputDocument(cmd, id, doc, readShowMetadata)
}

// outputDocument prints a document in the requested format
func outputDocument(cmd *cobra.Command, id string, doc *models.Document, metadata bool) error {
	return cli.OutputResults(cmd.OutOrStdout(), outputFormat(cmd), newFileResult(id, doc, metadata))
}
