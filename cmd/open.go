package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <uuid>",
	Short: "Record a project open and print its path",
	Long: `Record that the project was opened (bumping its open counter) and print
the root path, so shells can cd into it. Launching editors is left to
external tool integrations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := store.GetByUUID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if project == nil {
			return fmt.Errorf("no project with uuid %s", args[0])
		}

		if err := store.RecordOpen(cmd.Context(), project.UUID); err != nil {
			return err
		}

		fmt.Println(project.RootPath)
		return nil
	},
}
