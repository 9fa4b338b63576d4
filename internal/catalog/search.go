package catalog

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/eleven-am/projcat/internal/logger"
	"github.com/eleven-am/projcat/internal/model"
)

// searchColumns are the text columns free-text search matches against, in
// predicate order. The optional ones are probed before use so search degrades
// instead of failing on an older schema snapshot.
var searchColumns = []struct {
	name     string
	optional bool
}{
	{name: "name"},
	{name: "root_path"},
	{name: "description", optional: true},
	{name: "notes", optional: true},
}

// Search composes the three optional filters into one query. Free text
// becomes a LIKE OR across whichever text columns currently exist; the
// favorites filter returns an empty result, not an error, when the favorite
// column is missing mid-migration; the tag filter keeps projects carrying any
// of the requested tags and is applied in memory because tags live in a
// serialized blob. Results are ordered by name, case-insensitively.
func (s *Store) Search(ctx context.Context, filter model.SearchFilter) ([]*model.Project, error) {
	e, err := s.executor()
	if err != nil {
		return nil, err
	}

	pred := sq.And{sq.Eq{"enabled": 1}}

	if filter.FavoritesOnly {
		hasFavorite, err := s.inspector.hasColumn(ctx, e, tableProjects, "favorite")
		if err != nil {
			return nil, err
		}
		if !hasFavorite {
			logger.Search().Warn("favorite column missing, returning no matches")
			return []*model.Project{}, nil
		}
		pred = append(pred, sq.Eq{"favorite": 1})
	}

	if filter.Text != "" {
		textPred, err := s.textPredicate(ctx, e, filter.Text)
		if err != nil {
			return nil, err
		}
		pred = append(pred, textPred)
	}

	query, args, err := sq.Select("*").
		From(tableProjects).
		Where(pred).
		OrderBy("name COLLATE NOCASE").
		ToSql()
	if err != nil {
		return nil, wrapError("search projects", query, args, err)
	}

	var rows []projectRow
	if err := s.selectContext(ctx, "search projects", &rows, query, args...); err != nil {
		return nil, err
	}

	projects := hydrateRows(rows)
	if len(filter.Tags) > 0 {
		projects = filterByTags(projects, filter.Tags)
	}
	return projects, nil
}

// textPredicate builds the LIKE OR across the text columns that exist.
func (s *Store) textPredicate(ctx context.Context, e executor, text string) (sq.Sqlizer, error) {
	pattern := "%" + text + "%"

	var or sq.Or
	for _, col := range searchColumns {
		if col.optional {
			has, err := s.inspector.hasColumn(ctx, e, tableProjects, col.name)
			if err != nil {
				return nil, err
			}
			if !has {
				continue
			}
		}
		or = append(or, sq.Like{col.name: pattern})
	}

	return or, nil
}

// filterByTags keeps projects whose decoded tag list intersects wanted.
func filterByTags(projects []*model.Project, wanted []string) []*model.Project {
	wantedSet := make(map[string]struct{}, len(wanted))
	for _, tag := range wanted {
		wantedSet[tag] = struct{}{}
	}

	matched := make([]*model.Project, 0, len(projects))
	for _, p := range projects {
		for _, tag := range p.Tags {
			if _, ok := wantedSet[tag]; ok {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}
