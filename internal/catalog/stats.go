package catalog

import (
	"context"
	"database/sql"
	"sort"

	"github.com/eleven-am/projcat/internal/model"
)

const (
	topTagCount    = 10
	topOpenedCount = 5
)

// Statistics aggregates the catalog: enabled and favorite counts, the ten
// most frequent tags, and the five most opened projects. Tag frequencies are
// counted from each record's decoded tag list since tags live in a blob.
func (s *Store) Statistics(ctx context.Context) (*model.Statistics, error) {
	e, err := s.executor()
	if err != nil {
		return nil, err
	}

	stats := &model.Statistics{}

	if _, err := s.getContext(ctx, "statistics", &stats.TotalProjects,
		"SELECT COUNT(*) FROM projects WHERE enabled = 1"); err != nil {
		return nil, err
	}

	hasFavorite, err := s.inspector.hasColumn(ctx, e, tableProjects, "favorite")
	if err != nil {
		return nil, err
	}
	if hasFavorite {
		if _, err := s.getContext(ctx, "statistics", &stats.Favorites,
			"SELECT COUNT(*) FROM projects WHERE enabled = 1 AND favorite = 1"); err != nil {
			return nil, err
		}
	}

	distribution, err := s.tagDistribution(ctx)
	if err != nil {
		return nil, err
	}
	stats.TagDistribution = distribution

	hasOpenCount, err := s.inspector.hasColumn(ctx, e, tableProjects, "open_count")
	if err != nil {
		return nil, err
	}
	if hasOpenCount {
		mostOpened, err := s.mostOpened(ctx)
		if err != nil {
			return nil, err
		}
		stats.MostOpened = mostOpened
	}

	return stats, nil
}

func (s *Store) tagDistribution(ctx context.Context) ([]model.TagCount, error) {
	var blobs []struct {
		UUID string         `db:"uuid"`
		Tags sql.NullString `db:"tags"`
	}
	err := s.selectContext(ctx, "statistics", &blobs,
		"SELECT uuid, tags FROM projects WHERE enabled = 1 AND tags IS NOT NULL")
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, blob := range blobs {
		for _, tag := range decodeTags(blob.UUID, blob.Tags) {
			counts[tag]++
		}
	}

	distribution := make([]model.TagCount, 0, len(counts))
	for name, count := range counts {
		distribution = append(distribution, model.TagCount{Name: name, Count: count})
	}
	// count descending, name ascending for a stable order
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].Name < distribution[j].Name
	})

	if len(distribution) > topTagCount {
		distribution = distribution[:topTagCount]
	}
	return distribution, nil
}

func (s *Store) mostOpened(ctx context.Context) ([]model.OpenCount, error) {
	var rows []struct {
		Name      string        `db:"name"`
		OpenCount sql.NullInt64 `db:"open_count"`
	}
	err := s.selectContext(ctx, "statistics", &rows,
		"SELECT name, open_count FROM projects WHERE enabled = 1 ORDER BY open_count DESC LIMIT ?",
		topOpenedCount)
	if err != nil {
		return nil, err
	}

	opened := make([]model.OpenCount, 0, len(rows))
	for _, row := range rows {
		opened = append(opened, model.OpenCount{Name: row.Name, Count: int(row.OpenCount.Int64)})
	}
	return opened, nil
}
