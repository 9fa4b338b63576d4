package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eleven-am/projcat/internal/catalog"
	"github.com/eleven-am/projcat/internal/config"
)

var (
	configPath string
	dbPath     string

	store *catalog.Store
)

var rootCmd = &cobra.Command{
	Use:   "projcat",
	Short: "Personal project catalog",
	Long: `projcat keeps a local catalog of your project directories: names, tags,
notes, favorites and usage counters, stored in a single sqlite file.

Directory scanning and AI tagging are external; every command here is a thin
view over the catalog.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			cfg.DatabasePath = dbPath
		}

		store = catalog.New(cfg)
		if err := store.Connect(cmd.Context()); err != nil {
			return err
		}
		return store.CreateTables(cmd.Context())
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		return store.Close()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to projcat.yaml (defaults to the standard locations)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Catalog file path (overrides the configured one)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(archivedCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
