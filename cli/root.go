// Package cli implements the libctl commands over the API client.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"smartlibrary/config"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	APIBase string
	Format  string // "table" | "json"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"table", "json"}

// NewRootCommand creates the root command for the libctl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "libctl",
		Short:        "Manage the Smart Library catalog",
		Long:         "libctl lists, adds and removes books in the Smart Library catalog over its REST API.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.APIBase, "api", config.APIBaseURL(), "base URL of the catalog API")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "table", "output format (table|json)")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
