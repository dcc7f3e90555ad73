package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/drivepad/pkg/storage"
)

var openShowMetadata bool

// NewOpenCommand creates the open command
func NewOpenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <path|locator>",
		Short: "Print a file chosen outside drivepad",
		Long: `Read a file the way the editor's picker does. The argument is a local
path or a storage locator (file://, mem://, s3://, gs://).

Examples:
  # Print a local file
  drivepad open ./notes.txt

  # Read through a locator
  drivepad open file:///home/me/notes.txt --metadata`,
		Args: cobra.ExactArgs(1),
		RunE: runOpen,
	}

	cmd.Flags().BoolVarP(&openShowMetadata, "metadata", "m", false, "Show file name")

	return cmd
}

func runOpen(cmd *cobra.Command, args []string) error {
	locator := args[0]
	if !storage.IsLocator(locator) {
		var err error
		if locator, err = storage.LocatorFromPath(locator); err != nil {
			return err
		}
	}

	facade, err := connectFacade(cmd)
	if err != nil {
		return err
	}

	doc, err := facade.OpenViaPicker(cmd.Context(), locator)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", args[0], err)
	}

	return outputDocument(cmd, "", doc, openShowMetadata)
}
