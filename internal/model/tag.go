package model

import "strings"

// Tag is a catalog-level tag definition, independent of which projects use it.
// Names are unique case-insensitively.
type Tag struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}

// Cosmetic defaults applied when a tag is created without them.
const (
	DefaultTagColor = "#3b82f6"
	DefaultTagIcon  = "🏷️"
)

// MaxTags caps how many tags a single project keeps after normalization.
const MaxTags = 3

// NormalizeTags lowercases every tag, strips anything that is not a-z or 0-9,
// drops empties and duplicates while preserving first-seen order, and caps the
// result at MaxTags.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, MaxTags)

	for _, tag := range tags {
		var b strings.Builder
		for _, r := range strings.ToLower(tag) {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		normalized := b.String()
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
		if len(out) == MaxTags {
			break
		}
	}

	return out
}
