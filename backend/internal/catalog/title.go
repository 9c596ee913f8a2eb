package catalog

import (
	"regexp"
	"strings"

	"latticework/backend/internal/constants"
)

// Feed titles read "Name - Category". Any of hyphen, en dash or em
// dash separates, but only when something follows it; the left side is
// kept lazy so the first separator wins.
var titleSep = regexp.MustCompile(`^(.*?)\s*[-–—]\s*(.+)$`)

// SplitTitle breaks a raw feed title into model name and category.
// Titles without a qualifying separator land in the fallback category
// whole, including ones that merely end in a dash.
func SplitTitle(raw string) (name, category string) {
	trimmed := strings.TrimSpace(raw)
	if m := titleSep.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return trimmed, constants.FallbackCategory
}
