package model

import "time"

// Project is one catalog record: a single project directory and the metadata
// collected about it. Tags are always materialized as an ordered list of
// normalized strings regardless of how they are stored.
type Project struct {
	UUID             string
	Name             string
	RootPath         string
	Tags             []string
	AIAppName        string
	AIAppDescription string
	Description      string
	Notes            string
	Favorite         bool
	LastOpened       *time.Time
	OpenCount        int
	DateAdded        time.Time
	LastUpdated      time.Time
	Enabled          bool
	ColorTheme       string
	Archived         bool
	ArchivePath      string
	ArchiveDate      *time.Time
	ArchiveSizeMB    float64
}

// ProjectInput is the payload accepted by Store.UpsertProject. UUID, Name and
// RootPath are required. A nil optional field is written as NULL, matching the
// replace semantics of the upsert; only DateAdded, OpenCount and (when Favorite
// is nil) the favorite flag are carried forward from an existing record.
type ProjectInput struct {
	UUID             string
	Name             string
	RootPath         string
	Tags             []string
	AIAppName        *string
	AIAppDescription *string
	Description      *string
	Notes            *string
	Favorite         *bool
	LastOpened       *time.Time
	Enabled          *bool
	ColorTheme       string
}

// SearchFilter holds the three independent, optional search predicates. Tags
// use any-match semantics: a project matches when it carries at least one of
// the requested tags.
type SearchFilter struct {
	Text          string   `json:"text,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	FavoritesOnly bool     `json:"favorites_only,omitempty"`
}

// SearchEntry is one recorded search from the history table.
type SearchEntry struct {
	Query     string
	Filter    SearchFilter
	Timestamp time.Time
}

// ToolConfig is a per-project configuration blob for one external tool.
type ToolConfig struct {
	ProjectUUID string
	ToolName    string
	Config      map[string]any
}
