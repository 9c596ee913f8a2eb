package catalog

import "sort"

// Catalog is the read-only in-memory index of every loaded model.
// Build it once at startup; all query methods are safe for concurrent
// readers afterwards because nothing mutates.
type Catalog struct {
	posts      []Post
	edges      []Edge
	byID       map[string]Post
	byCategory map[string][]Post
	categories []string // sorted ascending, computed once
}

// New indexes the given posts and edges. Posts keep their load order
// everywhere; a duplicate ID keeps the later record in the ID index
// while both stay listed.
func New(posts []Post, edges []Edge) *Catalog {
	c := &Catalog{
		posts:      posts,
		edges:      edges,
		byID:       make(map[string]Post, len(posts)),
		byCategory: make(map[string][]Post),
	}

	for _, p := range posts {
		c.byID[p.ID] = p
		c.byCategory[p.Category] = append(c.byCategory[p.Category], p)
	}

	c.categories = make([]string, 0, len(c.byCategory))
	for category := range c.byCategory {
		c.categories = append(c.categories, category)
	}
	sort.Strings(c.categories)

	return c
}

// Empty reports whether no models are loaded at all, which is a
// different situation from a query that finds nothing
func (c *Catalog) Empty() bool {
	return len(c.posts) == 0
}

// Len returns the number of loaded models
func (c *Catalog) Len() int {
	return len(c.posts)
}

// Posts returns every model in load order
func (c *Catalog) Posts() []Post {
	return c.posts
}

// Edges returns every cross-link in document order
func (c *Catalog) Edges() []Edge {
	return c.edges
}

// Categories returns all category names sorted ascending
func (c *Catalog) Categories() []string {
	return c.categories
}

// PostsInCategory returns one category's models in load order
func (c *Catalog) PostsInCategory(category string) []Post {
	return c.byCategory[category]
}

// ByID looks up a model by its exact slug
func (c *Catalog) ByID(id string) (Post, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ListAll groups every model by category: categories sorted ascending,
// models in load order within each group
func (c *Catalog) ListAll() []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(c.categories))
	for _, category := range c.categories {
		groups = append(groups, CategoryGroup{
			Category: category,
			Posts:    c.byCategory[category],
		})
	}
	return groups
}
