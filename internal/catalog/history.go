package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/eleven-am/projcat/internal/model"
)

// RecordSearch appends one entry to the search history.
func (s *Store) RecordSearch(ctx context.Context, query string, filter model.SearchFilter) error {
	filters, err := json.Marshal(filter)
	if err != nil {
		return wrapError("record search", "", nil, err)
	}

	_, err = s.execContext(ctx, "record search",
		"INSERT INTO search_history (query, filters, timestamp) VALUES (?, ?, ?)",
		query, string(filters), formatTime(time.Now()))
	return err
}

// RecentSearches returns the newest history entries, most recent first.
func (s *Store) RecentSearches(ctx context.Context, limit int) ([]model.SearchEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []struct {
		Query     string         `db:"query"`
		Filters   sql.NullString `db:"filters"`
		Timestamp string         `db:"timestamp"`
	}
	err := s.selectContext(ctx, "list search history", &rows,
		"SELECT query, filters, timestamp FROM search_history ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.SearchEntry, 0, len(rows))
	for _, row := range rows {
		entry := model.SearchEntry{
			Query:     row.Query,
			Timestamp: parseTime(row.Timestamp),
		}
		if row.Filters.Valid && row.Filters.String != "" {
			if err := json.Unmarshal([]byte(row.Filters.String), &entry.Filter); err != nil {
				s.log.Warn("corrupt search history filters", "error", err)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
