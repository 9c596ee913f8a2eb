package graph

import (
	"testing"

	"latticework/backend/internal/catalog"
)

func TestAutoLink(t *testing.T) {
	edges := AutoLink(fixturePosts())

	// Categories are encountered as Economics, Psychology, Mathematics,
	// Logic; every bridged pair links the first post of each side.
	want := []catalog.Edge{
		{Source: "compounding", Target: "loss-aversion"},
		{Source: "compounding", Target: "bayes-theorem"},
		{Source: "loss-aversion", Target: "first-principles"},
		{Source: "bayes-theorem", Target: "first-principles"},
	}

	if len(edges) != len(want) {
		t.Fatalf("Expected %d edges, got %d", len(want), len(edges))
	}
	for i, w := range want {
		if edges[i] != w {
			t.Errorf("Expected edge %d to be %+v, got %+v", i, w, edges[i])
		}
	}
}

func TestAutoLinkFirstPostWins(t *testing.T) {
	edges := AutoLink(fixturePosts())

	for _, e := range edges {
		if e.Source == "opportunity-cost" || e.Target == "opportunity-cost" {
			t.Errorf("Expected only the first Economics post to be linked, got %+v", e)
		}
	}
}

func TestAutoLinkEncounterOrder(t *testing.T) {
	posts := []catalog.Post{
		{ID: "loss-aversion", Title: "Loss Aversion", Category: "Psychology"},
		{ID: "compounding", Title: "Compounding", Category: "Economics"},
	}

	edges := AutoLink(posts)

	if len(edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d", len(edges))
	}
	// Direction follows encounter order, not the bridge declaration.
	if edges[0].Source != "loss-aversion" || edges[0].Target != "compounding" {
		t.Errorf("Expected loss-aversion -> compounding, got %+v", edges[0])
	}
	if edges[0].Reason != "" {
		t.Errorf("Expected suggested edge without reason, got %q", edges[0].Reason)
	}
}

func TestAutoLinkUnbridgedCategories(t *testing.T) {
	posts := []catalog.Post{
		{ID: "survivorship-bias", Title: "Survivorship Bias", Category: "History"},
		{ID: "golden-ratio", Title: "Golden Ratio", Category: "Art"},
	}

	if edges := AutoLink(posts); len(edges) != 0 {
		t.Errorf("Expected no edges for unbridged categories, got %d", len(edges))
	}
}

func TestAutoLinkSingleCategory(t *testing.T) {
	posts := []catalog.Post{
		{ID: "compounding", Title: "Compounding", Category: "Economics"},
		{ID: "opportunity-cost", Title: "Opportunity Cost", Category: "Economics"},
	}

	if edges := AutoLink(posts); len(edges) != 0 {
		t.Errorf("Expected no edges within a single category, got %d", len(edges))
	}
}
