package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"smartlibrary/client"
	"smartlibrary/models"
)

// NewListCommand creates the "list" command: all books, newest first.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(opts.APIBase)
			books, err := c.List(cmd.Context())
			if err != nil {
				return err
			}
			return renderBooks(cmd, opts, books)
		},
	}
}

func renderBooks(cmd *cobra.Command, opts *RootOptions, books []models.Book) error {
	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(books)
	}
	if len(books) == 0 {
		fmt.Fprintln(out, "No books in the library yet.")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tISBN\tYEAR")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", b.ID.Hex(), b.Title, b.Author, b.ISBN, b.Year)
	}
	return tw.Flush()
}
