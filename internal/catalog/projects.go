package catalog

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/eleven-am/projcat/internal/model"
)

// projectColumns is the column set an upsert writes. Archive metadata is
// deliberately absent: only Archive touches those columns.
var projectColumns = []string{
	"uuid", "name", "root_path", "tags", "ai_app_name", "ai_app_description",
	"description", "notes", "favorite", "last_opened", "open_count",
	"date_added", "last_updated", "enabled", "color_theme",
}

// UpsertProject inserts or replaces a project keyed by uuid and returns that
// uuid. On update, date_added and open_count carry forward, and favorite
// carries forward unless the input supplies it; every other field takes the
// input's value. A different uuid claiming an already-catalogued root_path
// replaces the logical project at that path, so GetByPath stays single-valued.
func (s *Store) UpsertProject(ctx context.Context, in model.ProjectInput) (string, error) {
	if err := validateInput(in); err != nil {
		return "", err
	}

	tags := model.NormalizeTags(in.Tags)

	err := s.WithTransaction(ctx, func(tx *Store) error {
		existing, err := tx.GetByUUID(ctx, in.UUID)
		if err != nil {
			return err
		}

		now := time.Now()
		dateAdded := now
		openCount := 0
		favorite := in.Favorite != nil && *in.Favorite
		if existing != nil {
			dateAdded = existing.DateAdded
			openCount = existing.OpenCount
			if in.Favorite == nil {
				favorite = existing.Favorite
			}
		}

		enabled := in.Enabled == nil || *in.Enabled
		colorTheme := in.ColorTheme
		if colorTheme == "" {
			colorTheme = "blue"
		}

		var lastOpened interface{}
		if in.LastOpened != nil {
			lastOpened = formatTime(*in.LastOpened)
		}

		if _, err := tx.execContext(ctx, "upsert project",
			"DELETE FROM projects WHERE root_path = ? AND uuid != ?",
			in.RootPath, in.UUID); err != nil {
			return err
		}

		query, args, err := sq.Insert(tableProjects).
			Options("OR REPLACE").
			Columns(projectColumns...).
			Values(
				in.UUID,
				in.Name,
				in.RootPath,
				encodeTags(tags),
				nullable(in.AIAppName),
				nullable(in.AIAppDescription),
				nullable(in.Description),
				nullable(in.Notes),
				boolToInt(favorite),
				lastOpened,
				openCount,
				formatTime(dateAdded),
				formatTime(now),
				boolToInt(enabled),
				colorTheme,
			).
			ToSql()
		if err != nil {
			return wrapError("upsert project", query, args, err)
		}

		_, err = tx.execContext(ctx, "upsert project", query, args...)
		return err
	})
	if err != nil {
		return "", err
	}

	return in.UUID, nil
}

// GetByUUID fetches one project. A missing uuid is not an error: both return
// values are nil.
func (s *Store) GetByUUID(ctx context.Context, uuid string) (*model.Project, error) {
	var row projectRow
	found, err := s.getContext(ctx, "get project", &row,
		"SELECT * FROM projects WHERE uuid = ?", uuid)
	if err != nil || !found {
		return nil, err
	}
	return row.toProject(), nil
}

// GetByPath fetches the project recorded for a filesystem path, or nil.
func (s *Store) GetByPath(ctx context.Context, rootPath string) (*model.Project, error) {
	var row projectRow
	found, err := s.getContext(ctx, "get project", &row,
		"SELECT * FROM projects WHERE root_path = ?", rootPath)
	if err != nil || !found {
		return nil, err
	}
	return row.toProject(), nil
}

// ListAll returns every project ordered by name, case-insensitively. With
// enabledOnly set, soft-deleted and archived projects are excluded.
func (s *Store) ListAll(ctx context.Context, enabledOnly bool) ([]*model.Project, error) {
	builder := sq.Select("*").From(tableProjects).OrderBy("name COLLATE NOCASE")

	if enabledOnly {
		e, err := s.executor()
		if err != nil {
			return nil, err
		}
		pred := sq.And{sq.Eq{"enabled": 1}}
		hasArchived, err := s.inspector.hasColumn(ctx, e, tableProjects, "archived")
		if err != nil {
			return nil, err
		}
		if hasArchived {
			pred = append(pred, sq.Eq{"archived": 0})
		}
		builder = builder.Where(pred)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, wrapError("list projects", query, args, err)
	}

	var rows []projectRow
	if err := s.selectContext(ctx, "list projects", &rows, query, args...); err != nil {
		return nil, err
	}

	return hydrateRows(rows), nil
}

// ToggleFavorite flips the favorite flag and returns the new state. An
// unknown uuid returns false without error.
func (s *Store) ToggleFavorite(ctx context.Context, uuid string) (bool, error) {
	project, err := s.GetByUUID(ctx, uuid)
	if err != nil || project == nil {
		return false, err
	}

	newState := !project.Favorite
	_, err = s.execContext(ctx, "toggle favorite",
		"UPDATE projects SET favorite = ?, last_updated = ? WHERE uuid = ?",
		boolToInt(newState), formatTime(time.Now()), uuid)
	if err != nil {
		return false, err
	}
	return newState, nil
}

// UpdateNotes overwrites a project's notes.
func (s *Store) UpdateNotes(ctx context.Context, uuid, notes string) error {
	_, err := s.execContext(ctx, "update notes",
		"UPDATE projects SET notes = ?, last_updated = ? WHERE uuid = ?",
		notes, formatTime(time.Now()), uuid)
	return err
}

// updatableFields is the UpdateFields whitelist. The canonical name field is
// absent on purpose: AI naming only ever populates ai_app_name, never name.
// Whether AI output should be allowed to replace the folder-derived name is a
// product decision, not one this layer takes.
var updatableFields = map[string]bool{
	"ai_app_name": true,
	"description": true,
	"tags":        true,
}

// UpdateFields applies a whitelist-only partial update. Unknown uuids are a
// caller bug and return ErrNotFound; supplying no whitelisted field returns
// (false, nil) without touching the record.
func (s *Store) UpdateFields(ctx context.Context, uuid string, fields map[string]interface{}) (bool, error) {
	project, err := s.GetByUUID(ctx, uuid)
	if err != nil {
		return false, err
	}
	if project == nil {
		return false, notFoundError("update fields", uuid)
	}

	builder := sq.Update(tableProjects)
	updates := 0

	for field, value := range fields {
		if !updatableFields[field] {
			continue
		}
		if field == "tags" {
			switch v := value.(type) {
			case []string:
				value = encodeTags(model.NormalizeTags(v))
			case string:
				// tolerate already-serialized input
			default:
				return false, ValidationError{Field: "tags", Message: "must be a []string"}
			}
		}
		builder = builder.Set(field, value)
		updates++
	}

	if updates == 0 {
		return false, nil
	}

	query, args, err := builder.
		Set("last_updated", formatTime(time.Now())).
		Where(sq.Eq{"uuid": uuid}).
		ToSql()
	if err != nil {
		return false, wrapError("update fields", query, args, err)
	}

	if _, err := s.execContext(ctx, "update fields", query, args...); err != nil {
		return false, err
	}
	return true, nil
}

// RecordOpen bumps the open counter and stamps last_opened. The increment
// happens in SQL, so two consumers racing on separate connections still
// count both opens.
func (s *Store) RecordOpen(ctx context.Context, uuid string) error {
	now := formatTime(time.Now())
	_, err := s.execContext(ctx, "record open",
		"UPDATE projects SET last_opened = ?, open_count = open_count + 1, last_updated = ? WHERE uuid = ?",
		now, now, uuid)
	return err
}

// Delete soft-deletes a project: it disappears from enabled listings but
// stays retrievable by uuid.
func (s *Store) Delete(ctx context.Context, uuid string) error {
	_, err := s.execContext(ctx, "delete project",
		"UPDATE projects SET enabled = 0, last_updated = ? WHERE uuid = ?",
		formatTime(time.Now()), uuid)
	return err
}

// HardDelete permanently removes the row.
func (s *Store) HardDelete(ctx context.Context, uuid string) error {
	_, err := s.execContext(ctx, "hard delete project",
		"DELETE FROM projects WHERE uuid = ?", uuid)
	return err
}

// Archive marks a project archived and stores the archive metadata. The
// archive file itself is the caller's concern: create it first, call Archive
// inside WithTransaction, and remove the file when the transaction fails.
func (s *Store) Archive(ctx context.Context, uuid, archivePath string, sizeMB float64) error {
	now := formatTime(time.Now())
	_, err := s.execContext(ctx, "archive project",
		`UPDATE projects
		 SET archived = 1, archive_path = ?, archive_date = ?, archive_size_mb = ?, last_updated = ?
		 WHERE uuid = ?`,
		archivePath, now, sizeMB, now, uuid)
	return err
}

// GetArchived returns archived projects, most recently archived first. On a
// catalog predating archive support it returns an empty list.
func (s *Store) GetArchived(ctx context.Context) ([]*model.Project, error) {
	e, err := s.executor()
	if err != nil {
		return nil, err
	}
	hasArchived, err := s.inspector.hasColumn(ctx, e, tableProjects, "archived")
	if err != nil {
		return nil, err
	}
	if !hasArchived {
		return []*model.Project{}, nil
	}

	var rows []projectRow
	err = s.selectContext(ctx, "list archived", &rows,
		"SELECT * FROM projects WHERE archived = 1 ORDER BY archive_date DESC")
	if err != nil {
		return nil, err
	}
	return hydrateRows(rows), nil
}

func hydrateRows(rows []projectRow) []*model.Project {
	projects := make([]*model.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, rows[i].toProject())
	}
	return projects
}

func validateInput(in model.ProjectInput) error {
	if in.UUID == "" {
		return ValidationError{Field: "uuid", Message: "is required"}
	}
	if in.Name == "" {
		return ValidationError{Field: "name", Message: "is required"}
	}
	if in.RootPath == "" {
		return ValidationError{Field: "root_path", Message: "is required"}
	}
	return nil
}

func nullable(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
