package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	updateAIName      string
	updateDescription string
	updateTags        []string
)

var updateCmd = &cobra.Command{
	Use:   "update <uuid>",
	Short: "Update selected project fields",
	Long: `Update the AI-suggested app name, the description and/or the tags of a
project. Other fields are not updatable through this command.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := make(map[string]interface{})
		if cmd.Flags().Changed("ai-name") {
			fields["ai_app_name"] = updateAIName
		}
		if cmd.Flags().Changed("description") {
			fields["description"] = updateDescription
		}
		if cmd.Flags().Changed("tags") {
			fields["tags"] = updateTags
		}

		updated, err := store.UpdateFields(cmd.Context(), args[0], fields)
		if err != nil {
			return err
		}
		if !updated {
			return fmt.Errorf("nothing to update: pass --ai-name, --description or --tags")
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateAIName, "ai-name", "", "AI-suggested application name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "Description")
	updateCmd.Flags().StringSliceVar(&updateTags, "tags", nil, "Tags, comma separated")
}
