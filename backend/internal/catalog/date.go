package catalog

import "time"

// Feeds carry RFC 822 style timestamps, zero-padded or not
var feedDateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

const displayDateLayout = "Jan 02, 2006"

// FormatDate normalizes a feed timestamp into its display form, like
// "Dec 09, 2024". Anything that does not parse comes back unchanged
// with ok false, so callers can tell a fallback from a date that
// happens to look raw.
func FormatDate(raw string) (string, bool) {
	for _, layout := range feedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayDateLayout), true
		}
	}
	return raw, false
}
