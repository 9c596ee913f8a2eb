package graph

import (
	"testing"

	"latticework/backend/internal/catalog"
)

func fixturePosts() []catalog.Post {
	return []catalog.Post{
		{ID: "compounding", Title: "Compounding", Category: "Economics", Link: "https://example.com/p/compounding", Published: "Jan 02, 2025", Description: "Growth feeding on itself."},
		{ID: "loss-aversion", Title: "Loss Aversion", Category: "Psychology", Link: "https://example.com/p/loss-aversion", Published: "Jan 09, 2025", Description: "Losses loom larger than gains."},
		{ID: "bayes-theorem", Title: "Bayes Theorem", Category: "Mathematics", Link: "https://example.com/p/bayes-theorem", Published: "Jan 16, 2025", Description: "Updating beliefs with evidence."},
		{ID: "first-principles", Title: "First Principles", Category: "Logic", Link: "https://example.com/p/first-principles", Published: "Jan 23, 2025", Description: "Reasoning from the ground up."},
		{ID: "opportunity-cost", Title: "Opportunity Cost", Category: "Economics", Link: "https://example.com/p/opportunity-cost", Published: "Jan 30, 2025", Description: "The road not taken has a price."},
	}
}

func fixtureEdges() []catalog.Edge {
	return []catalog.Edge{
		{Source: "compounding", Target: "opportunity-cost", Reason: "both price time"},
		{Source: "bayes-theorem", Target: "first-principles"},
	}
}

func TestBuild(t *testing.T) {
	payload := Build(fixturePosts(), fixtureEdges())

	wantCategories := []string{"Economics", "Logic", "Mathematics", "Psychology"}
	if len(payload.Categories) != len(wantCategories) {
		t.Fatalf("Expected %d categories, got %d", len(wantCategories), len(payload.Categories))
	}
	for i, want := range wantCategories {
		if payload.Categories[i] != want {
			t.Errorf("Expected category %q at %d, got %q", want, i, payload.Categories[i])
		}
	}

	// Hubs come first, in sorted category order, then posts in load order.
	if len(payload.Nodes) != 9 {
		t.Fatalf("Expected 9 nodes, got %d", len(payload.Nodes))
	}
	hub := payload.Nodes[0]
	if hub.ID != "hub-Economics" || hub.Label != "Economics" || hub.Type != NodeTypeHub {
		t.Errorf("Expected Economics hub first, got %+v", hub)
	}
	if hub.Radius != 22 {
		t.Errorf("Expected hub radius 22, got %d", hub.Radius)
	}
	if hub.Link != "" || hub.Published != "" || hub.Description != "" {
		t.Errorf("Expected hub node without post fields, got %+v", hub)
	}

	post := payload.Nodes[4]
	if post.ID != "compounding" || post.Type != NodeTypePost {
		t.Errorf("Expected first post node 'compounding', got %+v", post)
	}
	if post.Label != "Compounding" || post.Category != "Economics" {
		t.Errorf("Expected post label/category from catalog, got %+v", post)
	}
	if post.Link == "" || post.Published == "" || post.Description == "" {
		t.Errorf("Expected post node to carry tooltip fields, got %+v", post)
	}
	if post.Radius != 14 {
		t.Errorf("Expected post radius 14, got %d", post.Radius)
	}

	// One hub-link per post, then the cross-links.
	if len(payload.Links) != 7 {
		t.Fatalf("Expected 7 links, got %d", len(payload.Links))
	}
	first := payload.Links[0]
	if first.Source != "hub-Economics" || first.Target != "compounding" || first.Type != LinkTypeHub {
		t.Errorf("Expected hub-link for first post, got %+v", first)
	}
	cross := payload.Links[5]
	if cross.Source != "compounding" || cross.Target != "opportunity-cost" || cross.Type != LinkTypeCross {
		t.Errorf("Expected first cross-link compounding->opportunity-cost, got %+v", cross)
	}
}

func TestBuildSkipsDanglingEdges(t *testing.T) {
	edges := append(fixtureEdges(),
		catalog.Edge{Source: "compounding", Target: "ghost-model"},
		catalog.Edge{Source: "ghost-model", Target: "compounding"},
	)

	payload := Build(fixturePosts(), edges)

	for _, l := range payload.Links {
		if l.Source == "ghost-model" || l.Target == "ghost-model" {
			t.Errorf("Expected dangling edge to be skipped, got %+v", l)
		}
	}
	if len(payload.Links) != 7 {
		t.Errorf("Expected 7 links after skipping dangling edges, got %d", len(payload.Links))
	}
}

func TestBuildEmpty(t *testing.T) {
	payload := Build(nil, nil)

	if len(payload.Nodes) != 0 {
		t.Errorf("Expected no nodes, got %d", len(payload.Nodes))
	}
	if len(payload.Links) != 0 {
		t.Errorf("Expected no links, got %d", len(payload.Links))
	}
	if len(payload.Categories) != 0 {
		t.Errorf("Expected no categories, got %d", len(payload.Categories))
	}
}

func TestBuildSharedHub(t *testing.T) {
	payload := Build(fixturePosts(), nil)

	hubs := 0
	for _, n := range payload.Nodes {
		if n.Type == NodeTypeHub && n.Category == "Economics" {
			hubs++
		}
	}
	if hubs != 1 {
		t.Errorf("Expected a single Economics hub for two posts, got %d", hubs)
	}
}
