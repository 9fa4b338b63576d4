package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/eleven-am/projcat/internal/logger"
	"github.com/eleven-am/projcat/internal/model"
)

var (
	searchTags      []string
	searchFavorites bool
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search the catalog",
	Long:  `Search projects by free text, tags (any match) and favorite status.`,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := model.SearchFilter{
			Text:          strings.Join(args, " "),
			Tags:          model.NormalizeTags(searchTags),
			FavoritesOnly: searchFavorites,
		}

		projects, err := store.Search(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if filter.Text != "" {
			if err := store.RecordSearch(cmd.Context(), filter.Text, filter); err != nil {
				logger.CLI().Warn("failed to record search", "error", err)
			}
		}

		printProjects(projects)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchTags, "tags", nil, "Only projects carrying any of these tags")
	searchCmd.Flags().BoolVar(&searchFavorites, "favorites", false, "Only favorite projects")
}
