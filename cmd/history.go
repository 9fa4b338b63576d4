package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.RecentSearches(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No search history.")
			return nil
		}

		for _, entry := range entries {
			fmt.Printf("%s  %s\n", entry.Timestamp.Local().Format("2006-01-02 15:04"), entry.Query)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "How many entries to show")
}
