package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// inspector answers "does column X currently exist" questions for the query
// engine. Results are cached per connection because the schema only moves
// during a migration run; migrate and CreateTables invalidate the cache.
type inspector struct {
	mu     sync.Mutex
	tables map[string]map[string]bool
}

func newInspector() *inspector {
	return &inspector{tables: make(map[string]map[string]bool)}
}

// columns returns the live column set of table, probing the database on the
// first call per table. Table names come from package-level constants, never
// from caller input, so the PRAGMA interpolation is safe.
func (i *inspector) columns(ctx context.Context, e executor, table string) (map[string]bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if cols, ok := i.tables[table]; ok {
		return cols, nil
	}

	rows, err := e.QueryxContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, wrapError("inspect schema", fmt.Sprintf("PRAGMA table_info(%s)", table), nil, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var info struct {
			CID          int     `db:"cid"`
			Name         string  `db:"name"`
			Type         string  `db:"type"`
			NotNull      int     `db:"notnull"`
			DefaultValue *string `db:"dflt_value"`
			PrimaryKey   int     `db:"pk"`
		}
		if err := rows.StructScan(&info); err != nil {
			return nil, wrapError("inspect schema", fmt.Sprintf("PRAGMA table_info(%s)", table), nil, err)
		}
		cols[info.Name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("inspect schema", fmt.Sprintf("PRAGMA table_info(%s)", table), nil, err)
	}

	i.tables[table] = cols
	return cols, nil
}

// hasColumn reports whether table currently has the named column.
func (i *inspector) hasColumn(ctx context.Context, e executor, table, column string) (bool, error) {
	cols, err := i.columns(ctx, e, table)
	if err != nil {
		return false, err
	}
	return cols[column], nil
}

// invalidate drops every cached column set. Called after schema mutations.
func (i *inspector) invalidate() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.tables = make(map[string]map[string]bool)
}

// tableExists reports whether the named table is present.
func tableExists(ctx context.Context, e executor, table string) (bool, error) {
	var name string
	err := e.GetContext(ctx, &name,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, wrapError("inspect schema", "SELECT name FROM sqlite_master", []interface{}{table}, err)
	}
	return name == table, nil
}
