package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"embedscout/internal/provider"
)

var extractorsCmd = &cobra.Command{
	Use:   "extractors",
	Short: "List the supported sites",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range provider.Default(provider.Options{}).Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
