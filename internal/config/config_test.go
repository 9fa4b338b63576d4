package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotEmpty(t, cfg.DatabasePath)
	assert.Equal(t, DatabaseFileName, filepath.Base(cfg.DatabasePath))
	assert.Len(t, cfg.DefaultTags, 10)
}

func TestLoad(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "projcat.yaml")
		content := `database_path: /tmp/somewhere/cat.db
default_tags:
  - name: go
    color: "#00add8"
    icon: "g"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/somewhere/cat.db", cfg.DatabasePath)
		require.Len(t, cfg.DefaultTags, 1)
		assert.Equal(t, "go", cfg.DefaultTags[0].Name)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "projcat.yaml")
		require.NoError(t, os.WriteFile(path, []byte("database_path: /tmp/x.db\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/x.db", cfg.DatabasePath)
		assert.Len(t, cfg.DefaultTags, 10)
	})

	t.Run("explicit missing file errors", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("no path and no standard file falls back to defaults", func(t *testing.T) {
		t.Setenv("PROJCAT_CONFIG", "")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default().DatabasePath, cfg.DatabasePath)
	})

	t.Run("unparseable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "projcat.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestEnsureDatabaseDir(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "deep", "nested")
		cfg := &Config{DatabasePath: filepath.Join(dir, "cat.db")}

		require.NoError(t, cfg.EnsureDatabaseDir())

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("parent is a regular file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		cfg := &Config{DatabasePath: filepath.Join(file, "sub", "cat.db")}
		assert.Error(t, cfg.EnsureDatabaseDir())
	})
}
