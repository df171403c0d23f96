package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"embedscout/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past extractions",
	Args:  cobra.NoArgs,
	RunE:  historyRun,
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Forget the extraction of a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := history.Remove(args[0]); err != nil {
			return fmt.Errorf("removing history entry: %w", err)
		}
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

func historyRun(cmd *cobra.Command, args []string) error {
	entries, err := history.Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history entries found.")
		return nil
	}

	items := history.FormatForDisplay(entries)
	for i, item := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n    %s\n", item, entries[i].URL)
	}
	return nil
}
