package catalog

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/eleven-am/projcat/internal/model"
)

type tagRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Color string `db:"color"`
	Icon  string `db:"icon"`
}

// ListTags returns every known tag ordered by name, case-insensitively.
func (s *Store) ListTags(ctx context.Context) ([]model.Tag, error) {
	var rows []tagRow
	err := s.selectContext(ctx, "list tags", &rows,
		"SELECT * FROM tags ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, err
	}

	tags := make([]model.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, model.Tag{Name: row.Name, Color: row.Color, Icon: row.Icon})
	}
	return tags, nil
}

// AddTag registers a tag, ignoring the insert when the name already exists so
// an existing tag's color and icon are never overwritten. Empty color or icon
// fall back to the cosmetic defaults.
func (s *Store) AddTag(ctx context.Context, name, color, icon string) error {
	if color == "" {
		color = model.DefaultTagColor
	}
	if icon == "" {
		icon = model.DefaultTagIcon
	}

	query, args, err := sq.Insert(tableTags).
		Options("OR IGNORE").
		Columns("name", "color", "icon").
		Values(name, color, icon).
		ToSql()
	if err != nil {
		return wrapError("add tag", query, args, err)
	}

	_, err = s.execContext(ctx, "add tag", query, args...)
	return err
}

// UpdateTag partially updates a tag's color and/or icon. Empty arguments
// leave the current value; supplying neither returns (false, nil).
func (s *Store) UpdateTag(ctx context.Context, name, color, icon string) (bool, error) {
	builder := sq.Update(tableTags)
	updates := 0

	if color != "" {
		builder = builder.Set("color", color)
		updates++
	}
	if icon != "" {
		builder = builder.Set("icon", icon)
		updates++
	}
	if updates == 0 {
		return false, nil
	}

	query, args, err := builder.Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return false, wrapError("update tag", query, args, err)
	}

	if _, err := s.execContext(ctx, "update tag", query, args...); err != nil {
		return false, err
	}
	return true, nil
}
