package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	tagColor string
	tagIcon  string
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List known tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := store.ListTags(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCOLOR\tICON")
		for _, tag := range tags {
			fmt.Fprintf(w, "%s\t%s\t%s\n", tag.Name, tag.Color, tag.Icon)
		}
		w.Flush()
		return nil
	},
}

var tagsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return store.AddTag(cmd.Context(), args[0], tagColor, tagIcon)
	},
}

var tagsSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Update a tag's color or icon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := store.UpdateTag(cmd.Context(), args[0], tagColor, tagIcon)
		if err != nil {
			return err
		}
		if !updated {
			return fmt.Errorf("nothing to update: pass --color or --icon")
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{tagsAddCmd, tagsSetCmd} {
		c.Flags().StringVar(&tagColor, "color", "", "Tag color, e.g. #3b82f6")
		c.Flags().StringVar(&tagIcon, "icon", "", "Tag icon")
	}
	tagsCmd.AddCommand(tagsAddCmd)
	tagsCmd.AddCommand(tagsSetCmd)
}
