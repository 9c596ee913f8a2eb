package graph

import (
	"latticework/backend/internal/catalog"
)

// Category pairs whose models habitually reference each other. Order
// within a pair does not matter.
var bridgedCategories = [][2]string{
	{"Economics", "Psychology"},
	{"Mathematics", "Economics"},
	{"Mathematics", "Logic"},
	{"Psychology", "Logic"},
}

func bridgeKey(a, b string) [2]string {
	if a > b {
		return [2]string{b, a}
	}
	return [2]string{a, b}
}

// AutoLink proposes cross-links when no hand-maintained document
// exists. For every pair of bridged categories present in the catalog
// it links the first loaded post of one to the first loaded post of
// the other, giving the lattice some connective tissue out of the box.
// The suggested edges carry no reason text.
func AutoLink(posts []catalog.Post) []catalog.Edge {
	byCategory := make(map[string][]catalog.Post)
	var order []string
	for _, p := range posts {
		if _, ok := byCategory[p.Category]; !ok {
			order = append(order, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	bridged := make(map[[2]string]bool, len(bridgedCategories))
	for _, pair := range bridgedCategories {
		bridged[bridgeKey(pair[0], pair[1])] = true
	}

	var edges []catalog.Edge
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if !bridged[bridgeKey(order[i], order[j])] {
				continue
			}
			edges = append(edges, catalog.Edge{
				Source: byCategory[order[i]][0].ID,
				Target: byCategory[order[j]][0].ID,
			})
		}
	}
	return edges
}
