package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eleven-am/projcat/internal/config"
)

// writeV0Catalog builds a database file holding the very first projects table
// layout with a couple of rows, as a fresh install of the earliest release
// would have left it.
func writeV0Catalog(t *testing.T, path string) {
	t.Helper()

	cfg := &config.Config{DatabasePath: path}
	s := New(cfg)
	ctx := context.Background()
	require.NoError(t, s.Connect(ctx))

	_, err := s.execContext(ctx, "test", `CREATE TABLE projects (
		uuid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		root_path TEXT NOT NULL UNIQUE,
		tags TEXT,
		ai_app_name TEXT,
		ai_app_description TEXT,
		date_added TEXT,
		last_updated TEXT,
		enabled INTEGER DEFAULT 1
	)`)
	require.NoError(t, err)

	now := formatTime(time.Now())
	for _, row := range []struct{ uuid, name, path, tags string }{
		{"u1", "alpha", "/p/alpha", `["api"]`},
		{"u2", "beta", "/p/beta", `[]`},
	} {
		_, err := s.execContext(ctx, "test",
			"INSERT INTO projects (uuid, name, root_path, tags, date_added, last_updated, enabled) VALUES (?, ?, ?, ?, ?, ?, 1)",
			row.uuid, row.name, row.path, row.tags, now, now)
		require.NoError(t, err)
	}

	require.NoError(t, s.Close())
}

func TestMigrateUpgradesOldCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	writeV0Catalog(t, path)

	s := New(&config.Config{DatabasePath: path})
	ctx := context.Background()
	require.NoError(t, s.Connect(ctx))
	t.Cleanup(func() { s.Close() })

	t.Run("existing rows survive", func(t *testing.T) {
		p, err := s.GetByUUID(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "alpha", p.Name)
		assert.Equal(t, []string{"api"}, p.Tags)
		assert.True(t, p.Enabled)
	})

	t.Run("all columns added", func(t *testing.T) {
		e, err := s.executor()
		require.NoError(t, err)

		cols, err := s.inspector.columns(ctx, e, tableProjects)
		require.NoError(t, err)
		for _, step := range migrationSteps {
			for _, col := range step.columns {
				assert.True(t, cols[col.name], "column %s missing after upgrade", col.name)
			}
		}
	})

	t.Run("new columns carry defaults", func(t *testing.T) {
		p, err := s.GetByUUID(ctx, "u2")
		require.NoError(t, err)
		assert.False(t, p.Favorite)
		assert.Equal(t, 0, p.OpenCount)
		assert.Equal(t, "blue", p.ColorTheme)
		assert.False(t, p.Archived)
		assert.Nil(t, p.LastOpened)
	})

	t.Run("each version recorded with a timestamp", func(t *testing.T) {
		var rows []struct {
			Version   int    `db:"version"`
			AppliedAt string `db:"applied_at"`
		}
		err := s.selectContext(ctx, "test", &rows,
			"SELECT version, applied_at FROM schema_version ORDER BY version")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 1, rows[0].Version)
		assert.Equal(t, 2, rows[1].Version)
		for _, row := range rows {
			assert.False(t, parseTime(row.AppliedAt).IsZero())
		}
	})

	t.Run("upgraded catalog is fully writable", func(t *testing.T) {
		state, err := s.ToggleFavorite(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, state)

		require.NoError(t, s.Archive(ctx, "u2", "/archives/beta.zip", 1.5))
		archived, err := s.GetArchived(ctx)
		require.NoError(t, err)
		require.Len(t, archived, 1)
		assert.Equal(t, "beta", archived[0].Name)
	})
}

func TestMigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")
	writeV0Catalog(t, path)

	s := New(&config.Config{DatabasePath: path})
	ctx := context.Background()
	require.NoError(t, s.Connect(ctx))
	t.Cleanup(func() { s.Close() })

	for i := 0; i < 3; i++ {
		s.migrate(ctx)
	}

	version, err := s.currentSchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)

	p, err := s.GetByUUID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "alpha", p.Name)
}

func TestMigratePartialUpgrade(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mid.db")

	// a catalog already at version 1 gets only the later step
	cfg := &config.Config{DatabasePath: path}
	s := New(cfg)
	ctx := context.Background()
	require.NoError(t, s.Connect(ctx))

	_, err := s.execContext(ctx, "test", `CREATE TABLE projects (
		uuid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		root_path TEXT NOT NULL UNIQUE,
		tags TEXT,
		description TEXT,
		notes TEXT,
		favorite INTEGER DEFAULT 0,
		last_opened TEXT,
		open_count INTEGER DEFAULT 0,
		color_theme TEXT DEFAULT 'blue',
		date_added TEXT,
		last_updated TEXT,
		enabled INTEGER DEFAULT 1
	)`)
	require.NoError(t, err)
	require.NoError(t, s.recordSchemaVersion(ctx, 1))
	require.NoError(t, s.Close())

	s = New(cfg)
	require.NoError(t, s.Connect(ctx))
	t.Cleanup(func() { s.Close() })

	e, err := s.executor()
	require.NoError(t, err)
	cols, err := s.inspector.columns(ctx, e, tableProjects)
	require.NoError(t, err)
	assert.True(t, cols["archived"])
	assert.True(t, cols["archive_path"])
	assert.True(t, cols["archive_date"])
	assert.True(t, cols["archive_size_mb"])

	version, err := s.currentSchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestMigrateSkipsFreshDatabase(t *testing.T) {
	s, ctx := newTestStore(t)

	// CreateTables built the full schema and stamped it current, so migrate
	// has nothing to do and records nothing further.
	version, err := s.currentSchemaVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, schemaVersion, version)

	s.migrate(ctx)

	var count int
	found, err := s.getContext(ctx, "test", &count, "SELECT COUNT(*) FROM schema_version")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, count, "only the initial stamp is recorded")
}
