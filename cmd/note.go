package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <uuid> <text>...",
	Short: "Overwrite a project's notes",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return store.UpdateNotes(cmd.Context(), args[0], strings.Join(args[1:], " "))
	},
}
