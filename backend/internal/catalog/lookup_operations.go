package catalog

import "strings"

// Resolve finds a single model from free-form input, which may be a
// title, a slug, or a fragment of a title. An exact slug match wins;
// otherwise the first model in load order whose title contains the
// input case-insensitively. At most one model comes back.
func (c *Catalog) Resolve(input string) (Post, bool) {
	if p, ok := c.byID[Slugify(input)]; ok {
		return p, true
	}

	lowered := strings.ToLower(input)
	for _, p := range c.posts {
		if strings.Contains(strings.ToLower(p.Title), lowered) {
			return p, true
		}
	}

	return Post{}, false
}
