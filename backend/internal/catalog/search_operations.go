package catalog

import (
	"sort"
	"strings"

	"latticework/backend/internal/constants"
)

// Additive weights for case-insensitive substring hits
const (
	scoreTitle       = 10
	scoreCategory    = 5
	scoreDescription = 3
	scoreID          = 2
)

// Search scores every model against the query and returns the top
// matches, best first. Ties keep load order. An empty or whitespace
// query matches nothing; callers that need to tell "nothing matched"
// from "nothing loaded" check Empty first.
func (c *Catalog) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []SearchResult
	for _, p := range c.posts {
		score := 0
		if strings.Contains(strings.ToLower(p.Title), q) {
			score += scoreTitle
		}
		if strings.Contains(strings.ToLower(p.Category), q) {
			score += scoreCategory
		}
		if strings.Contains(strings.ToLower(p.Description), q) {
			score += scoreDescription
		}
		// Slugs are already lowercase
		if strings.Contains(p.ID, q) {
			score += scoreID
		}
		if score > 0 {
			results = append(results, SearchResult{Post: p, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > constants.MaxSearchResults {
		results = results[:constants.MaxSearchResults]
	}
	return results
}
