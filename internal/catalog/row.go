package catalog

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/eleven-am/projcat/internal/logger"
	"github.com/eleven-am/projcat/internal/model"
)

// timeLayout is the persisted timestamp format: RFC 3339 UTC with a
// fixed-width fraction, so the TEXT columns sort chronologically.
// RFC3339Nano would trim trailing zeros and break that ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimePtr(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t := parseTime(s.String)
	if t.IsZero() {
		return nil
	}
	return &t
}

// projectRow mirrors the full current-version column set. Optional columns
// use Null types so rows written before a migration still scan.
type projectRow struct {
	UUID             string          `db:"uuid"`
	Name             string          `db:"name"`
	RootPath         string          `db:"root_path"`
	Tags             sql.NullString  `db:"tags"`
	AIAppName        sql.NullString  `db:"ai_app_name"`
	AIAppDescription sql.NullString  `db:"ai_app_description"`
	Description      sql.NullString  `db:"description"`
	Notes            sql.NullString  `db:"notes"`
	Favorite         sql.NullBool    `db:"favorite"`
	LastOpened       sql.NullString  `db:"last_opened"`
	OpenCount        sql.NullInt64   `db:"open_count"`
	DateAdded        string          `db:"date_added"`
	LastUpdated      string          `db:"last_updated"`
	Enabled          sql.NullBool    `db:"enabled"`
	ColorTheme       sql.NullString  `db:"color_theme"`
	Archived         sql.NullBool    `db:"archived"`
	ArchivePath      sql.NullString  `db:"archive_path"`
	ArchiveDate      sql.NullString  `db:"archive_date"`
	ArchiveSizeMB    sql.NullFloat64 `db:"archive_size_mb"`
}

// toProject hydrates a stored row into the typed record, decoding the tags
// blob and timestamps at this boundary only.
func (r *projectRow) toProject() *model.Project {
	colorTheme := r.ColorTheme.String
	if colorTheme == "" {
		colorTheme = "blue"
	}

	return &model.Project{
		UUID:             r.UUID,
		Name:             r.Name,
		RootPath:         r.RootPath,
		Tags:             decodeTags(r.UUID, r.Tags),
		AIAppName:        r.AIAppName.String,
		AIAppDescription: r.AIAppDescription.String,
		Description:      r.Description.String,
		Notes:            r.Notes.String,
		Favorite:         r.Favorite.Valid && r.Favorite.Bool,
		LastOpened:       parseTimePtr(r.LastOpened),
		OpenCount:        int(r.OpenCount.Int64),
		DateAdded:        parseTime(r.DateAdded),
		LastUpdated:      parseTime(r.LastUpdated),
		Enabled:          !r.Enabled.Valid || r.Enabled.Bool,
		ColorTheme:       colorTheme,
		Archived:         r.Archived.Valid && r.Archived.Bool,
		ArchivePath:      r.ArchivePath.String,
		ArchiveDate:      parseTimePtr(r.ArchiveDate),
		ArchiveSizeMB:    r.ArchiveSizeMB.Float64,
	}
}

// encodeTags serializes a normalized tag list into the stored blob.
func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		// a []string cannot fail to marshal; keep the record writable anyway
		return "[]"
	}
	return string(data)
}

// decodeTags turns the stored blob back into a list. A corrupt blob degrades
// to the empty list with a warning: the record stays visible in listings but
// never matches a tag filter.
func decodeTags(uuid string, blob sql.NullString) []string {
	if !blob.Valid || blob.String == "" {
		return []string{}
	}

	var tags []string
	if err := json.Unmarshal([]byte(blob.String), &tags); err != nil {
		logger.DB().Warn("corrupt tags blob, treating as empty",
			"uuid", uuid, "error", err)
		return []string{}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}
