package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"smartlibrary/client"
)

// NewRemoveCommand creates the "remove" command. Deletion asks for
// confirmation unless --yes is given.
func NewRemoveCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a book by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintf(out, "Delete book %s? [y/N] ", id)
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
				switch strings.ToLower(strings.TrimSpace(line)) {
				case "y", "yes":
				default:
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}
			c := client.New(opts.APIBase)
			book, err := c.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(book)
			}
			fmt.Fprintf(out, "Book deleted successfully: %s — %s (%s, %d)\n",
				book.Title, book.Author, book.ISBN, book.Year)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
