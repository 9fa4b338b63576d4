package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eleven-am/projcat/internal/config"
	"github.com/eleven-am/projcat/internal/model"
)

func seedSearchFixtures(t *testing.T, s *Store, ctx context.Context) {
	t.Helper()

	desc := "payment gateway integration"
	notes := "needs a refactor"
	fixtures := []model.ProjectInput{
		{UUID: "u1", Name: "billing", RootPath: "/code/billing", Tags: []string{"api", "go"}, Description: &desc},
		{UUID: "u2", Name: "website", RootPath: "/code/website", Tags: []string{"web"}, Notes: &notes},
		{UUID: "u3", Name: "scratch", RootPath: "/tmp/scratch"},
	}
	for _, in := range fixtures {
		_, err := s.UpsertProject(ctx, in)
		require.NoError(t, err)
	}
}

func TestSearchByText(t *testing.T) {
	s, ctx := newTestStore(t)
	seedSearchFixtures(t, s, ctx)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"matches name", "bill", []string{"billing"}},
		{"matches root path", "/tmp", []string{"scratch"}},
		{"matches description", "gateway", []string{"billing"}},
		{"matches notes", "refactor", []string{"website"}},
		{"several matches, ordered by name", "code", []string{"billing", "website"}},
		{"no match", "kubernetes", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects, err := s.Search(ctx, model.SearchFilter{Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.want, projectNames(projects))
		})
	}
}

func TestSearchFavoritesOnly(t *testing.T) {
	s, ctx := newTestStore(t)
	seedSearchFixtures(t, s, ctx)

	t.Run("no favorites yet", func(t *testing.T) {
		projects, err := s.Search(ctx, model.SearchFilter{FavoritesOnly: true})
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("after toggling one", func(t *testing.T) {
		_, err := s.ToggleFavorite(ctx, "u2")
		require.NoError(t, err)

		projects, err := s.Search(ctx, model.SearchFilter{FavoritesOnly: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"website"}, projectNames(projects))
	})
}

func TestSearchByTags(t *testing.T) {
	s, ctx := newTestStore(t)
	seedSearchFixtures(t, s, ctx)

	t.Run("any match", func(t *testing.T) {
		projects, err := s.Search(ctx, model.SearchFilter{Tags: []string{"go", "web"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"billing", "website"}, projectNames(projects))
	})

	t.Run("unknown tag", func(t *testing.T) {
		projects, err := s.Search(ctx, model.SearchFilter{Tags: []string{"haskell"}})
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("combined with text", func(t *testing.T) {
		projects, err := s.Search(ctx, model.SearchFilter{Text: "code", Tags: []string{"api"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"billing"}, projectNames(projects))
	})
}

func TestSearchExcludesDisabled(t *testing.T) {
	s, ctx := newTestStore(t)
	seedSearchFixtures(t, s, ctx)

	require.NoError(t, s.Delete(ctx, "u1"))

	projects, err := s.Search(ctx, model.SearchFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"scratch", "website"}, projectNames(projects))
}

func TestSearchToleratesCorruptTagBlob(t *testing.T) {
	s, ctx := newTestStore(t)
	seedSearchFixtures(t, s, ctx)

	_, err := s.execContext(ctx, "test",
		"UPDATE projects SET tags = 'not-json' WHERE uuid = ?", "u1")
	require.NoError(t, err)

	t.Run("still listed with empty tags", func(t *testing.T) {
		projects, err := s.Search(ctx, model.SearchFilter{})
		require.NoError(t, err)
		require.Len(t, projects, 3)

		p, err := s.GetByUUID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{}, p.Tags)
	})

	t.Run("never matches a tag filter", func(t *testing.T) {
		projects, err := s.Search(ctx, model.SearchFilter{Tags: []string{"api"}})
		require.NoError(t, err)
		assert.Empty(t, projects)
	})
}

// openDegradedStore connects to a fresh file and hand-builds a projects table
// predating the optional text and favorite columns, mimicking a catalog
// written by an older release.
func openDegradedStore(t *testing.T) (*Store, context.Context) {
	t.Helper()

	cfg := &config.Config{DatabasePath: filepath.Join(t.TempDir(), "old.db")}
	s := New(cfg)
	ctx := context.Background()
	require.NoError(t, s.Connect(ctx))
	t.Cleanup(func() { s.Close() })

	_, err := s.execContext(ctx, "test", `CREATE TABLE projects (
		uuid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		root_path TEXT NOT NULL UNIQUE,
		tags TEXT,
		date_added TEXT,
		last_updated TEXT,
		enabled INTEGER DEFAULT 1
	)`)
	require.NoError(t, err)

	now := formatTime(time.Now())
	_, err = s.execContext(ctx, "test",
		"INSERT INTO projects (uuid, name, root_path, tags, date_added, last_updated, enabled) VALUES (?, ?, ?, ?, ?, ?, 1)",
		"u1", "legacy", "/old/legacy", `["api"]`, now, now)
	require.NoError(t, err)

	return s, ctx
}

func TestSearchDegradesOnOldSchema(t *testing.T) {
	s, ctx := openDegradedStore(t)

	t.Run("text search skips missing columns", func(t *testing.T) {
		projects, err := s.Search(ctx, model.SearchFilter{Text: "legacy"})
		require.NoError(t, err)
		assert.Equal(t, []string{"legacy"}, projectNames(projects))
	})

	t.Run("favorites filter returns empty, not an error", func(t *testing.T) {
		projects, err := s.Search(ctx, model.SearchFilter{FavoritesOnly: true})
		require.NoError(t, err)
		require.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("tag filter still works", func(t *testing.T) {
		projects, err := s.Search(ctx, model.SearchFilter{Tags: []string{"api"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"legacy"}, projectNames(projects))
	})
}

func TestListAllDegradesOnOldSchema(t *testing.T) {
	s, ctx := openDegradedStore(t)

	projects, err := s.ListAll(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy"}, projectNames(projects))

	archived, err := s.GetArchived(ctx)
	require.NoError(t, err)
	require.NotNil(t, archived)
	assert.Empty(t, archived)
}

func projectNames(projects []*model.Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}
