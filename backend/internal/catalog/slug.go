package catalog

import (
	"regexp"
	"strings"

	"latticework/backend/internal/constants"
)

var (
	apostrophes = strings.NewReplacer("'", "", "’", "", "‘", "")
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify turns a model name into its canonical identifier: lowercase,
// apostrophes dropped, every other run of punctuation or whitespace
// collapsed to a single hyphen. Slugifying an existing slug gives it
// back unchanged.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = apostrophes.Replace(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return constants.FallbackSlug
	}
	return s
}
