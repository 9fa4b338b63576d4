// Package config carries the explicit configuration value handed to the
// catalog store. There is no ambient global: callers load a Config and pass it
// to catalog.New.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eleven-am/projcat/internal/model"
)

// DatabaseFileName is the catalog file created under the app data directory
// when no explicit path is configured.
const DatabaseFileName = "projcat.db"

// Config is the projcat.yaml configuration structure.
type Config struct {
	DatabasePath string `yaml:"database_path"`

	DefaultTags []model.Tag `yaml:"default_tags"`
}

// Default returns a configuration with the catalog file under the user config
// directory and the stock tag set.
func Default() *Config {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return &Config{
		DatabasePath: filepath.Join(dir, "projcat", DatabaseFileName),
		DefaultTags:  DefaultTags(),
	}
}

// DefaultTags returns the tag set seeded into a fresh catalog.
func DefaultTags() []model.Tag {
	return []model.Tag{
		{Name: "python", Color: "#3776ab", Icon: "🐍"},
		{Name: "javascript", Color: "#f7df1e", Icon: "⚡"},
		{Name: "typescript", Color: "#3178c6", Icon: "📘"},
		{Name: "web", Color: "#e34c26", Icon: "🌐"},
		{Name: "api", Color: "#009688", Icon: "🔌"},
		{Name: "frontend", Color: "#61dafb", Icon: "🎨"},
		{Name: "backend", Color: "#43853d", Icon: "⚙️"},
		{Name: "mobile", Color: "#3ddc84", Icon: "📱"},
		{Name: "cli", Color: "#4d4d4d", Icon: "⌨️"},
		{Name: "library", Color: "#563d7c", Icon: "📚"},
	}
}

// Load reads a Config from path. When path is empty it tries the standard
// locations and the PROJCAT_CONFIG environment variable, falling back to
// Default when no file exists. Fields absent from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = findConfigPath()
	}

	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.DatabasePath == "" {
		config.DatabasePath = Default().DatabasePath
	}
	if len(config.DefaultTags) == 0 {
		config.DefaultTags = DefaultTags()
	}

	return config, nil
}

func findConfigPath() string {
	if path := os.Getenv("PROJCAT_CONFIG"); path != "" {
		return path
	}

	locations := []string{"projcat.yaml", "projcat.yml", ".projcat.yaml", ".projcat.yml"}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// EnsureDatabaseDir creates the catalog file's parent directory when missing
// and verifies it is writable. It runs before any connection attempt.
func (c *Config) EnsureDatabaseDir() error {
	dir := filepath.Dir(c.DatabasePath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("database directory %s is not usable: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".projcat-probe-*")
	if err != nil {
		return fmt.Errorf("database directory %s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	return nil
}
