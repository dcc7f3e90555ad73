package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/pluqqy/drivepad/internal/cli"
	"github.com/pluqqy/drivepad/pkg/models"
)

// FileResult is the structured output of commands that return a document
type FileResult struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`

	showMetadata bool
}

func newFileResult(id string, doc *models.Document, metadata bool) FileResult {
	return FileResult{ID: id, Name: doc.Name, Content: doc.Content, showMetadata: metadata}
}

func (r FileResult) RenderText(w io.Writer) error {
	if r.showMetadata {
		fmt.Fprintf(w, "Name: %s\n", r.Name)
		if r.ID != "" {
			fmt.Fprintf(w, "ID: %s\n", r.ID)
		}
		fmt.Fprintln(w, strings.Repeat("-", 60))
	}
	_, err := fmt.Fprintln(w, r.Content)
	return err
}

// CreateResult prints as the bare id in text mode so scripts can capture it
type CreateResult struct {
	FileResult `yaml:",inline"`
}

func (r CreateResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.ID)
	return err
}

// QueryResult represents the output structure for the query command
type QueryResult struct {
	Files []models.RemoteFile `json:"files" yaml:"files"`
	Count int                 `json:"count" yaml:"count"`

	namesOnly bool
}

func (r QueryResult) RenderText(w io.Writer) error {
	if r.namesOnly {
		for _, f := range r.Files {
			if _, err := fmt.Fprintln(w, f.Name); err != nil {
				return err
			}
		}
		return nil
	}

	rows := make([][]string, 0, len(r.Files))
	for _, f := range r.Files {
		rows = append(rows, []string{f.ID, cli.TruncateString(f.Name, 50)})
	}
	return cli.WriteTable(w, []string{"ID", "NAME"}, rows)
}
