package post

import (
	"regexp"
	"strings"
)

var (
	slugInvalid    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugDashes     = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a post title: lowercase, strip
// characters outside [a-z0-9\s-], collapse whitespace runs to a dash,
// collapse dash runs.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return s
}
