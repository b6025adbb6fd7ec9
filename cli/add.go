package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"smartlibrary/client"
	"smartlibrary/models"
)

// NewAddCommand creates the "add" command: the create form as flags.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	var in models.BookInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(opts.APIBase)
			book, err := c.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(book)
			}
			fmt.Fprintf(out, "Book added successfully: %s — %s (%s, %d)\nid: %s\n",
				book.Title, book.Author, book.ISBN, book.Year, book.ID.Hex())
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "book title")
	cmd.Flags().StringVar(&in.Author, "author", "", "author name")
	cmd.Flags().StringVar(&in.ISBN, "isbn", "", "ISBN (must be unique)")
	cmd.Flags().IntVar(&in.Year, "year", 0, "publication year")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("isbn")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
