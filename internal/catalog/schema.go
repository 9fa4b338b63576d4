package catalog

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/eleven-am/projcat/internal/model"
)

// Table names. Always referenced through these constants; the inspector
// interpolates them into PRAGMA statements.
const (
	tableProjects      = "projects"
	tableTags          = "tags"
	tableToolConfigs   = "tool_configs"
	tableSearchHistory = "search_history"
	tableSchemaVersion = "schema_version"
)

const createSchemaVersionSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at TEXT NOT NULL
)`

const createProjectsSQL = `
CREATE TABLE IF NOT EXISTS projects (
	uuid TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	root_path TEXT NOT NULL UNIQUE,
	tags TEXT,
	ai_app_name TEXT,
	ai_app_description TEXT,
	description TEXT,
	notes TEXT,
	favorite INTEGER DEFAULT 0,
	last_opened TEXT,
	open_count INTEGER DEFAULT 0,
	date_added TEXT NOT NULL,
	last_updated TEXT NOT NULL,
	enabled INTEGER DEFAULT 1,
	color_theme TEXT DEFAULT 'blue',
	archived INTEGER DEFAULT 0,
	archive_path TEXT,
	archive_date TEXT,
	archive_size_mb REAL
)`

const createTagsSQL = `
CREATE TABLE IF NOT EXISTS tags (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL COLLATE NOCASE,
	color TEXT DEFAULT '#3b82f6',
	icon TEXT DEFAULT '🏷️'
)`

const createToolConfigsSQL = `
CREATE TABLE IF NOT EXISTS tool_configs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project_uuid TEXT NOT NULL,
	tool_name TEXT NOT NULL,
	config TEXT,
	FOREIGN KEY (project_uuid) REFERENCES projects(uuid) ON DELETE CASCADE,
	UNIQUE(project_uuid, tool_name)
)`

const createSearchHistorySQL = `
CREATE TABLE IF NOT EXISTS search_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	query TEXT NOT NULL,
	filters TEXT,
	timestamp TEXT NOT NULL
)`

// CreateTables creates every catalog table that does not exist yet and seeds
// the default tag set. Existing tables and tags are left untouched, so the
// call is safe on every startup.
func (s *Store) CreateTables(ctx context.Context) error {
	statements := []string{
		createSchemaVersionSQL,
		createProjectsSQL,
		createTagsSQL,
		createToolConfigsSQL,
		createSearchHistorySQL,
	}

	for _, stmt := range statements {
		if _, err := s.execContext(ctx, "create tables", stmt); err != nil {
			return err
		}
	}

	s.inspector.invalidate()

	// A freshly created projects table already has every column, so stamp it
	// as current; otherwise the next startup would walk the migration steps
	// for nothing.
	current, err := s.currentSchemaVersion(ctx)
	if err != nil {
		return err
	}
	if current < schemaVersion {
		if err := s.recordSchemaVersion(ctx, schemaVersion); err != nil {
			return err
		}
	}

	return s.seedDefaultTags(ctx)
}

// seedDefaultTags inserts the configured tag set, skipping names that already
// exist so a user's color or icon edits survive restarts.
func (s *Store) seedDefaultTags(ctx context.Context) error {
	for _, tag := range s.seedTagSet() {
		query, args, err := sq.Insert(tableTags).
			Options("OR IGNORE").
			Columns("name", "color", "icon").
			Values(tag.Name, tag.Color, tag.Icon).
			ToSql()
		if err != nil {
			return wrapError("seed tags", query, args, err)
		}
		if _, err := s.execContext(ctx, "seed tags", query, args...); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) seedTagSet() []model.Tag {
	if s.cfg != nil && len(s.cfg.DefaultTags) > 0 {
		return s.cfg.DefaultTags
	}
	return nil
}
