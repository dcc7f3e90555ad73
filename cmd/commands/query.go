package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/drivepad/internal/cli"
)

var queryNamesOnly bool

// NewQueryCommand creates the query command
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"ls"},
		Short:   "List files visible to drivepad",
		Long: `List the files this application can see. With per-file access that
is the files drivepad created or the user opened with it.

Only the first page of results is shown.

Examples:
  # Table of ids and names
  drivepad query

  # Names only, one per line
  drivepad query --names

  # JSON output
  drivepad query -o json`,
		Args: cobra.NoArgs,
		RunE: runQuery,
	}

	cmd.Flags().BoolVar(&queryNamesOnly, "names", false, "Print names only")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	facade, err := connectFacade(cmd)
	if err != nil {
		return err
	}

	files, err := facade.QueryFiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("unable to query files: %w", err)
	}

	format := outputFormat(cmd)
	if format == string(cli.FormatText) && len(files) == 0 {
		cli.PrintInfo("No files found")
		return nil
	}

	return cli.OutputResults(cmd.OutOrStdout(), format, QueryResult{
		Files:     files,
		Count:     len(files),
		namesOnly: queryNamesOnly,
	})
}
