package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eleven-am/projcat/internal/model"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := store.ListAll(cmd.Context(), !listAll)
		if err != nil {
			return err
		}
		printProjects(projects)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include soft-deleted and archived projects")
}

func printProjects(projects []*model.Project) {
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTAGS\tFAV\tOPENS\tPATH")
	for _, p := range projects {
		fav := ""
		if p.Favorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			p.Name, strings.Join(p.Tags, ","), fav, p.OpenCount, p.RootPath)
	}
	w.Flush()
}
