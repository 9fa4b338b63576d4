package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteHard bool

var deleteCmd = &cobra.Command{
	Use:   "delete <uuid>",
	Short: "Delete a project from the catalog",
	Long: `Soft-delete a project (it stays retrievable by uuid but disappears from
listings). With --hard the record is removed permanently.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if deleteHard {
			if err := store.HardDelete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Project permanently deleted.")
			return nil
		}

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Project removed from listings.")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteHard, "hard", false, "Permanently remove the record")
}
