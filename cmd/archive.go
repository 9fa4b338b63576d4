package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	archiveFile   string
	archiveSizeMB float64
)

var archiveCmd = &cobra.Command{
	Use:   "archive <uuid>",
	Short: "Record a project as archived",
	Long: `Record archive metadata for a project. Creating the archive file itself
is the archiver's job; run it first and pass the resulting path and size
here. If this command fails, clean up the file you created.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return store.Archive(cmd.Context(), args[0], archiveFile, archiveSizeMB)
	},
}

var archivedCmd = &cobra.Command{
	Use:   "archived",
	Short: "List archived projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := store.GetArchived(cmd.Context())
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Println("No archived projects.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tARCHIVED\tSIZE (MB)\tARCHIVE")
		for _, p := range projects {
			date := ""
			if p.ArchiveDate != nil {
				date = p.ArchiveDate.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n", p.Name, date, p.ArchiveSizeMB, p.ArchivePath)
		}
		w.Flush()
		return nil
	},
}

func init() {
	archiveCmd.Flags().StringVar(&archiveFile, "file", "", "Path to the archive file")
	archiveCmd.Flags().Float64Var(&archiveSizeMB, "size-mb", 0, "Archive size in megabytes")
	archiveCmd.MarkFlagRequired("file")
}
