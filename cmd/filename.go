package cmd

import (
	"fmt"

	"card-assets/core/utils"

	"github.com/spf13/cobra"
)

// filenameCmd prints the filename the service would extract from a stored URL.
var filenameCmd = &cobra.Command{
	Use:   "filename <url-or-path>",
	Short: "Print the asset filename extracted from a URL or path",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), utils.ExtractFilename(args[0]))
	},
}

func init() {
	RootCmd.AddCommand(filenameCmd)
}
