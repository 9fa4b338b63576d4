package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := store.Statistics(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Projects: %d (favorites: %d)\n", stats.TotalProjects, stats.Favorites)

		if len(stats.TagDistribution) > 0 {
			fmt.Println("\nTop tags:")
			for _, tag := range stats.TagDistribution {
				fmt.Printf("  %-20s %d\n", tag.Name, tag.Count)
			}
		}

		if len(stats.MostOpened) > 0 {
			fmt.Println("\nMost opened:")
			for _, entry := range stats.MostOpened {
				fmt.Printf("  %-20s %d\n", entry.Name, entry.Count)
			}
		}
		return nil
	},
}
