package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eleven-am/projcat/internal/logger"
)

// schemaVersion is the version the code expects. Bump it and append a
// migration step when adding columns.
const schemaVersion = 2

// columnDef is one column addition. Each ALTER is its own unit: a failing
// addition is logged and the remaining columns still apply, trading strict
// all-or-nothing upgrades for a catalog that stays usable.
type columnDef struct {
	name       string
	definition string
}

// migrationStep adds the columns one schema version introduced.
type migrationStep struct {
	version int
	columns []columnDef
}

// migrationSteps lists every step in increasing version order. A catalog
// several versions behind walks through all of them; none are skipped.
var migrationSteps = []migrationStep{
	{
		version: 1,
		columns: []columnDef{
			{"description", "TEXT"},
			{"notes", "TEXT"},
			{"favorite", "INTEGER DEFAULT 0"},
			{"last_opened", "TEXT"},
			{"open_count", "INTEGER DEFAULT 0"},
			{"color_theme", "TEXT DEFAULT 'blue'"},
		},
	},
	{
		version: 2,
		columns: []columnDef{
			{"archived", "INTEGER DEFAULT 0"},
			{"archive_path", "TEXT"},
			{"archive_date", "TEXT"},
			{"archive_size_mb", "REAL"},
		},
	},
}

// migrate brings the projects table up to schemaVersion, preserving every
// existing row. It runs on every successful Connect and never surfaces an
// error: failures are logged and the store continues with a best-effort
// schema, which the query engine tolerates.
func (s *Store) migrate(ctx context.Context) {
	log := s.migrationLog()

	exists, err := tableExists(ctx, s.exec, tableProjects)
	if err != nil {
		log.Warn("schema migration skipped", "error", err)
		return
	}
	if !exists {
		// CreateTables builds the full current schema in one shot.
		return
	}

	current, err := s.currentSchemaVersion(ctx)
	if err != nil {
		log.Warn("failed to read schema version, assuming 0", "error", err)
		current = 0
	}
	if current >= schemaVersion {
		return
	}

	for _, step := range migrationSteps {
		if step.version <= current {
			continue
		}
		s.applyMigrationStep(ctx, step)
	}

	s.inspector.invalidate()
}

// applyMigrationStep adds the step's missing columns and records the version
// as applied. The column list is re-probed per step so additions from the
// previous step are visible.
func (s *Store) applyMigrationStep(ctx context.Context, step migrationStep) {
	log := s.migrationLog()

	s.inspector.invalidate()
	existing, err := s.inspector.columns(ctx, s.exec, tableProjects)
	if err != nil {
		log.Warn("failed to probe columns, skipping migration step",
			"version", step.version, "error", err)
		return
	}

	added := 0
	for _, col := range step.columns {
		if existing[col.name] {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", tableProjects, col.name, col.definition)
		if _, err := s.exec.ExecContext(ctx, stmt); err != nil {
			log.Warn("failed to add column", "column", col.name, "error", err)
			continue
		}
		added++
	}

	if err := s.recordSchemaVersion(ctx, step.version); err != nil {
		log.Warn("failed to record schema version", "version", step.version, "error", err)
		return
	}

	log.Info("applied schema migration", "version", step.version, "columns_added", added)
}

// currentSchemaVersion reads the highest applied version, or 0 when the
// version table is missing or empty.
func (s *Store) currentSchemaVersion(ctx context.Context) (int, error) {
	exists, err := tableExists(ctx, s.exec, tableSchemaVersion)
	if err != nil || !exists {
		return 0, err
	}

	var version int
	found, err := s.getContext(ctx, "read schema version", &version,
		"SELECT version FROM schema_version ORDER BY version DESC LIMIT 1")
	if err != nil || !found {
		return 0, err
	}
	return version, nil
}

// recordSchemaVersion writes one row per applied version with its timestamp.
func (s *Store) recordSchemaVersion(ctx context.Context, version int) error {
	if _, err := s.execContext(ctx, "record schema version",
		"CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY, applied_at TEXT NOT NULL)"); err != nil {
		return err
	}
	_, err := s.execContext(ctx, "record schema version",
		"INSERT OR REPLACE INTO schema_version (version, applied_at) VALUES (?, ?)",
		version, formatTime(time.Now()))
	return err
}

func (s *Store) migrationLog() *slog.Logger {
	return logger.Migration()
}
