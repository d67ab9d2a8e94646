package crawler

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// normalizeWhitespace collapses runs of whitespace to single spaces and trims
// both ends.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// slugToName turns a path slug like "new-york" into a display name like
// "New York".
func slugToName(slug string) string {
	name := strings.TrimSpace(strings.ReplaceAll(slug, "-", " "))
	if name == "" {
		return ""
	}
	return cases.Title(language.English).String(name)
}

// pathSegments splits a URL path into its non-empty segments.
func pathSegments(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
