package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <uuid>",
	Short: "Toggle a project's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := store.ToggleFavorite(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if state {
			fmt.Println("Marked as favorite.")
		} else {
			fmt.Println("No longer a favorite.")
		}
		return nil
	},
}
