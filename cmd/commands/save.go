package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/drivepad/internal/cli"
	"github.com/pluqqy/drivepad/pkg/models"
	"github.com/pluqqy/drivepad/pkg/storage"
)

var (
	saveTitle   string
	saveContent string
	saveFile    string
	saveYes     bool
)

// NewSaveCommand creates the save command
func NewSaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <file-id>",
		Short: "Overwrite a remote file",
		Long: `Replace the name and content of a remote file.

Content comes from --content or from --file, which accepts a local path or
a storage locator (file://, mem://, s3://, gs://). When --title is omitted
the name of the --file source is used, or the current remote name is kept.

Examples:
  # Write literal content
  drivepad save 1AbCdEf --title "Notes" --content "hello world"

  # Upload a local file without prompting
  drivepad save 1AbCdEf --file ./notes.txt --yes`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFileID(args[0]); err != nil {
				return err
			}
			hasContent := cmd.Flags().Changed("content")
			hasFile := saveFile != ""
			if hasContent == hasFile {
				return fmt.Errorf("exactly one of --content or --file is required")
			}
			return nil
		},
		RunE: runSave,
	}

	cmd.Flags().StringVarP(&saveTitle, "title", "t", "", "New file name")
	cmd.Flags().StringVarP(&saveContent, "content", "c", "", "New file content")
	cmd.Flags().StringVarP(&saveFile, "file", "f", "", "Read content from a path or locator")
	cmd.Flags().BoolVarP(&saveYes, "yes", "y", false, "Skip the overwrite confirmation")

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	name, content := saveTitle, saveContent
	if saveFile != "" {
		doc, err := readSource(cmd, saveFile)
		if err != nil {
			return err
		}
		content = doc.Content
		if name == "" {
			name = doc.Name
		}
	}

	facade, err := connectFacade(cmd)
	if err != nil {
		return err
	}

	if name == "" {
		current, err := facade.ReadFile(ctx, id)
		if err != nil {
			return fmt.Errorf("couldn't read file %s: %w", id, err)
		}
		name = current.Name
	}

	if !saveYes {
		ok, err := cli.Confirm(fmt.Sprintf("Overwrite remote file %s as %q?", id, name), false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Save cancelled")
			return nil
		}
	}

	if err := facade.SaveFile(ctx, id, name, content); err != nil {
		return fmt.Errorf("unable to save file %s: %w", id, err)
	}

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, newFileResult(id, &models.Document{Name: name, Content: content}, false))
	}

	cli.PrintSuccess("Saved %q to %s", name, id)
	return nil
}

// readSource resolves --file through the storage layer
func readSource(cmd *cobra.Command, source string) (*models.Document, error) {
	locator := source
	if !storage.IsLocator(source) {
		if err := cli.ValidateFilePath(source); err != nil {
			return nil, err
		}
		var err error
		if locator, err = storage.LocatorFromPath(source); err != nil {
			return nil, err
		}
	}

	return storage.ReadLocator(cmd.Context(), locator)
}
