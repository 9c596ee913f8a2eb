package graph

import (
	"sort"

	"go.uber.org/zap"

	"latticework/backend/internal/catalog"
	"latticework/backend/pkg/logger"
)

// Node types and link types as rendered by the visualization.
const (
	NodeTypeHub  = "hub"
	NodeTypePost = "post"

	LinkTypeHub   = "hub-link"
	LinkTypeCross = "cross-link"
)

const (
	hubRadius  = 22
	postRadius = 14
)

// Node is a single point in the rendered lattice. Hubs carry only the
// category they anchor; post nodes carry the full tooltip payload.
type Node struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Link        string `json:"link,omitempty"`
	Published   string `json:"published,omitempty"`
	Description string `json:"description,omitempty"`
	Radius      int    `json:"radius"`
}

// Link connects two nodes by id.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"`
}

// Payload is the complete dataset the renderer consumes, shared by the
// HTML export and the graph API endpoint.
type Payload struct {
	Nodes      []Node   `json:"nodes"`
	Links      []Link   `json:"links"`
	Categories []string `json:"categories"`
}

// HubID returns the node id anchoring a category.
func HubID(category string) string {
	return "hub-" + category
}

// Build assembles the render payload: one hub node per category in
// sorted order, one post node per post in load order, a hub-link tying
// every post to its category, and a cross-link per edge. Edges that
// reference an unknown post id are skipped rather than rendered as
// floating endpoints.
func Build(posts []catalog.Post, edges []catalog.Edge) Payload {
	known := make(map[string]bool, len(posts))
	seen := make(map[string]bool)
	// Stays an array in JSON even when empty, the renderer iterates it.
	categories := []string{}
	for _, p := range posts {
		known[p.ID] = true
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)

	nodes := make([]Node, 0, len(categories)+len(posts))
	for _, category := range categories {
		nodes = append(nodes, Node{
			ID:       HubID(category),
			Label:    category,
			Type:     NodeTypeHub,
			Category: category,
			Radius:   hubRadius,
		})
	}
	for _, p := range posts {
		nodes = append(nodes, Node{
			ID:          p.ID,
			Label:       p.Title,
			Type:        NodeTypePost,
			Category:    p.Category,
			Link:        p.Link,
			Published:   p.Published,
			Description: p.Description,
			Radius:      postRadius,
		})
	}

	links := make([]Link, 0, len(posts)+len(edges))
	for _, p := range posts {
		links = append(links, Link{
			Source: HubID(p.Category),
			Target: p.ID,
			Type:   LinkTypeHub,
		})
	}
	for _, e := range edges {
		if !known[e.Source] || !known[e.Target] {
			logger.Get().Debug("skipping dangling cross-link",
				zap.String("source", e.Source),
				zap.String("target", e.Target))
			continue
		}
		links = append(links, Link{
			Source: e.Source,
			Target: e.Target,
			Type:   LinkTypeCross,
		})
	}

	return Payload{Nodes: nodes, Links: links, Categories: categories}
}
