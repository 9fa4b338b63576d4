package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/eleven-am/projcat/internal/model"
)

// uuidFileName is the marker file written into a project directory so the
// same directory always maps to the same catalog record.
const uuidFileName = ".projcatid"

var (
	addName        string
	addTags        []string
	addDescription string
	addFavorite    bool
)

var addCmd = &cobra.Command{
	Use:   "add [path]",
	Short: "Add or refresh a project in the catalog",
	Long: `Add the given directory (default: the current one) to the catalog, or
refresh its record if it is already known. The project uuid is persisted in a
.projcatid file inside the directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Project name (defaults to the folder name)")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Tags, comma separated")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Free-text description")
	addCmd.Flags().BoolVar(&addFavorite, "favorite", false, "Mark as favorite")
}

func runAdd(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	rootPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	info, err := os.Stat(rootPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", rootPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", rootPath)
	}

	id, err := directoryUUID(rootPath)
	if err != nil {
		return err
	}

	name := addName
	if name == "" {
		name = filepath.Base(rootPath)
	}

	input := model.ProjectInput{
		UUID:     id,
		Name:     name,
		RootPath: rootPath,
		Tags:     addTags,
	}
	if addDescription != "" {
		input.Description = &addDescription
	}
	if cmd.Flags().Changed("favorite") {
		input.Favorite = &addFavorite
	}

	if _, err := store.UpsertProject(cmd.Context(), input); err != nil {
		return err
	}

	fmt.Printf("Cataloged %s (%s)\n", name, id)
	return nil
}

// directoryUUID reads the directory's uuid marker, creating it on first
// contact. The uuid is generated once per directory and reused forever.
func directoryUUID(rootPath string) (string, error) {
	markerPath := filepath.Join(rootPath, uuidFileName)

	data, err := os.ReadFile(markerPath)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if _, parseErr := uuid.Parse(id); parseErr == nil {
			return id, nil
		}
	}

	id := uuid.NewString()
	if err := os.WriteFile(markerPath, []byte(id+"\n"), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", markerPath, err)
	}
	return id, nil
}
