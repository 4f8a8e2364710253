package util

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a deterministic filesystem-safe name from free text:
// lower-cased, runs of non-alphanumerics collapsed to a single underscore,
// leading and trailing underscores trimmed.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugPattern.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
